package usecase

import (
	"fittingroom/internal/domain/user"
	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/pkg/jwt"

	"github.com/google/uuid"
)

// Identity is who the bearer token says the caller is.
type Identity struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	ValidateToken(tokenString string) (Identity, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (Identity, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return Identity{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return Identity{}, errs.Wrap(err, "token carries unknown role")
	}

	return Identity{UserID: claims.UserID, Role: role}, nil
}
