package infra

import (
	"errors"
	"log/slog"

	"hotel-booking-client/internal/pkg/errs"
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

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}

	slogger.Error("Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Error kinds of the remote backend boundary. The backend is reached over
// HTTP, so classification happens by response status (or the absence of a
// response at all).
const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindUnauthorized RepositoryErrorKind = "UNAUTHORIZED"
	KindBadRequest   RepositoryErrorKind = "BAD_REQUEST"
	KindServer       RepositoryErrorKind = "SERVER_FAILURE"
	KindNetwork      RepositoryErrorKind = "NETWORK_FAILURE"
)
