package infra

import (
	"errors"
	"log/slog"

	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs DB failures at error level; expected outcomes (not found,
// conflicts) only at debug so a busy fitting room does not flood the log.
func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindDBFailure {
		slogger.Error("Repository error: "+msg, logArgs...)
	} else {
		slogger.Debug("Repository error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

// ClassifyPgErr picks the kind from the driver error and wraps it.
func ClassifyPgErr(slogger *slog.Logger, msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return WrapRepoErr(slogger, KindNotFound, msg, err)
	case pgconv.IsUniqueViolation(err):
		return WrapRepoErr(slogger, KindDuplicateKey, msg, err)
	case pgconv.IsForeignKeyViolation(err):
		return WrapRepoErr(slogger, KindForeignKeyViolated, msg, err)
	default:
		return WrapRepoErr(slogger, KindDBFailure, msg, err)
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
)
