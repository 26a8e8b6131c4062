package bootstrap

import (
	"fittingroom/internal/pkg/clock"
	"fittingroom/internal/pkg/config"
	"fittingroom/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, clk)
}
