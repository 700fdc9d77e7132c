package registryclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"

	"go.uber.org/zap"
)

const (
	enqueuePath     = "/api/v1/pending-items"
	enqueueOp       = "enqueue pending item"
	maxErrorBodyLen = 4096
)

var _ ports.ContainerRegistryClient = &HTTPClient{}

// EnqueueRequest is the body of the enqueue endpoint.
type EnqueueRequest struct {
	Destination    string `json:"destination"`
	OriginRegistry string `json:"originRegistry"`
	OriginItemID   uint64 `json:"originItemId"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HTTPClient calls the enqueue endpoint of a remote container registry.
// Every failure, including a timeout, is reported as errs.RemoteCallFailedError naming the
// target registry address; the endpoint only appears in the log.
type HTTPClient struct {
	target   kernel.Address
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewHTTPClient creates a client for the registry served at baseURL. timeout bounds the
// whole call; zero disables the bound.
func NewHTTPClient(target kernel.Address, baseURL string, timeout time.Duration, logger *zap.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("registry url", fmt.Errorf("%q is not an absolute url", baseURL))
	}

	log := logger.With(zap.String("component", "registry_client"))
	return &HTTPClient{
		target:   target,
		endpoint: u.JoinPath(enqueuePath).String(),
		client: &http.Client{
			Timeout:   timeout,
			Transport: loggingTransport{next: http.DefaultTransport, logger: log},
		},
		logger: log,
	}, nil
}

func (c *HTTPClient) EnqueuePendingItem(ctx context.Context, destination kernel.Destination, ref kernel.ItemRef) error {
	body, err := json.Marshal(EnqueueRequest{
		Destination:    destination.String(),
		OriginRegistry: ref.Origin().String(),
		OriginItemID:   ref.ItemID(),
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return c.fail(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fail(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	return c.fail(decodeError(resp))
}

func (c *HTTPClient) fail(cause error) error {
	c.logger.Warn("handoff failed",
		zap.Stringer("target", c.target),
		zap.String("endpoint", c.endpoint),
		zap.Error(cause),
	)
	return errs.NewRemoteCallFailedError(c.target.String(), enqueueOp, cause)
}

func decodeError(resp *http.Response) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
	if err != nil {
		return fmt.Errorf("status %d", resp.StatusCode)
	}

	var body errorResponse
	if json.Unmarshal(raw, &body) == nil && body.Message != "" {
		return fmt.Errorf("status %d: %s", resp.StatusCode, body.Message)
	}
	return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
}

// loggingTransport logs every outgoing handoff call.
type loggingTransport struct {
	next   http.RoundTripper
	logger *zap.Logger
}

func (t loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		t.logger.Warn("handoff call failed", append(fields, zap.Error(err))...)
		return nil, err
	}

	t.logger.Debug("handoff call", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}
