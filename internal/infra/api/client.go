// Package api implements the repositories over the remote booking backend's
// REST surface. It is the only place that speaks HTTP or the backend's wire
// encodings; everything above it sees domain types.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"hotel-booking-client/internal/infra"
	"hotel-booking-client/internal/pkg/config"
	"hotel-booking-client/internal/pkg/errs"
	"hotel-booking-client/internal/pkg/session"

	"github.com/google/uuid"
)

type Client struct {
	cfg    config.API
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg config.API, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// do issues one JSON request. The bearer token is attached when the session
// has one; the auth endpoints pass session.Anonymous(). A nil out skips
// response decoding. Errors come back as RepositoryError with the kind
// derived from the response status, or KindNetwork when no response arrived.
func (c *Client) do(ctx context.Context, sess session.Session, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return infra.WrapRepoErr(c.logger, infra.KindBadRequest, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint(path), reqBody)
	if err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindBadRequest, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if sess.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+sess.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindNetwork, method+" "+path+" failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return infra.WrapRepoErr(c.logger, kindForStatus(resp.StatusCode),
			method+" "+path+" returned "+resp.Status, errs.Newf("unexpected status %d", resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapRepoErr(c.logger, infra.KindServer, "failed to decode response body", err)
	}
	return nil
}

func kindForStatus(status int) infra.RepositoryErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.KindUnauthorized
	case status == http.StatusNotFound:
		return infra.KindNotFound
	case status >= 400 && status < 500:
		return infra.KindBadRequest
	default:
		return infra.KindServer
	}
}
