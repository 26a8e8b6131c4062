//go:build unit

package infra_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"fittingroom/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "anything else", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := infra.ClassifyPgErr(logger, "op", tt.err)
			assert.True(t, infra.IsKind(got, tt.want))
			assert.ErrorIs(t, got, tt.err)
			assert.Contains(t, got.Error(), string(tt.want)+": op")
		})
	}

	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindNotFound))
}
