package http

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tracking/internal/core/ports"
	"tracking/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/crypto/sha3"
)

const (
	// IdempotencyKeyHeader carries the client chosen key of a retried request.
	IdempotencyKeyHeader = "Idempotency-Key"

	// IdempotentReplayHeader marks a response replayed from the idempotency store.
	IdempotentReplayHeader = "Idempotent-Replayed"

	maxIdempotencyKeyLength = 255
)

// RequestLogger logs every request through zap.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	log := logger.With(zap.String("component", "http"))

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("request_id", v.RequestID),
			}

			switch {
			case v.Error != nil && v.Status >= http.StatusInternalServerError:
				log.Error("request failed", append(fields, zap.Error(v.Error))...)
			case v.Status >= http.StatusInternalServerError:
				log.Error("request failed", fields...)
			default:
				log.Info("request", fields...)
			}
			return nil
		},
	})
}

// OpenAPIValidator rejects requests that do not match the API document. Requests outside
// the documented paths pass through untouched.
func OpenAPIValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	// Paths in the document are absolute; servers would make the router expect a host.
	swagger.Servers = nil

	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         false,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) {
					return next(ctx)
				}
				if errors.Is(err, routers.ErrMethodNotAllowed) {
					return echo.NewHTTPError(http.StatusMethodNotAllowed, err.Error())
				}
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}

			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) {
		return strings.Split(reqErr.Error(), "\n")[0]
	}
	return strings.Split(err.Error(), "\n")[0]
}

// Idempotency replays the stored response of a POST request retried with the same
// Idempotency-Key header and body. A duplicate that arrives while the first request is
// still running gets 409; reusing a key with a different body gets 422. Responses with a
// 5xx status, including recovered panics, are not stored, so the client may retry.
func Idempotency(store ports.IdempotencyStore, ttl time.Duration, logger *zap.Logger) echo.MiddlewareFunc {
	log := logger.With(zap.String("component", "idempotency"))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			key := req.Header.Get(IdempotencyKeyHeader)
			if req.Method != http.MethodPost || key == "" {
				return next(ctx)
			}
			if len(key) > maxIdempotencyKeyLength {
				return echo.NewHTTPError(http.StatusBadRequest,
					fmt.Sprintf("%s must not exceed %d characters", IdempotencyKeyHeader, maxIdempotencyKeyLength))
			}

			fingerprint, err := fingerprintBody(req)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "request body could not be read")
			}

			// keys are scoped to the route so one key cannot replay another operation
			scoped := req.Method + " " + req.URL.Path + " " + key
			reqCtx := req.Context()

			stored, found, err := store.Lookup(reqCtx, scoped)
			if err != nil {
				return err
			}
			if found {
				if stored.Fingerprint != fingerprint {
					return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
						Code:    http.StatusUnprocessableEntity,
						Message: "Idempotency-Key was already used with a different request body",
					})
				}
				return replay(ctx, stored)
			}

			reserved, err := store.Reserve(reqCtx, scoped, ttl)
			if err != nil {
				return err
			}
			if !reserved {
				return ctx.JSON(http.StatusConflict, servers.Error{
					Code:    http.StatusConflict,
					Message: "a request with this Idempotency-Key is in progress",
				})
			}

			// the request context may already be cancelled
			saveCtx := context.WithoutCancel(reqCtx)
			release := func() {
				if relErr := store.Release(saveCtx, scoped); relErr != nil {
					log.Warn("failed to release idempotency key", zap.String("key", key), zap.Error(relErr))
				}
			}

			defer func() {
				if r := recover(); r != nil {
					release()
					panic(r)
				}
			}()

			recorder := &responseRecorder{ResponseWriter: ctx.Response().Writer}
			ctx.Response().Writer = recorder

			if handlerErr := next(ctx); handlerErr != nil {
				ctx.Error(handlerErr)
			}

			status := ctx.Response().Status
			if status >= http.StatusInternalServerError || !ctx.Response().Committed {
				release()
				return nil
			}

			err = store.Save(saveCtx, scoped, ports.StoredResponse{
				Fingerprint: fingerprint,
				Status:      status,
				ContentType: ctx.Response().Header().Get(echo.HeaderContentType),
				Body:        recorder.body.Bytes(),
			}, ttl)
			if err != nil {
				log.Warn("failed to store idempotent response", zap.String("key", key), zap.Error(err))
			}
			return nil
		}
	}
}

// fingerprintBody hashes the request body and puts it back for the handler.
func fingerprintBody(req *http.Request) (string, error) {
	var body []byte
	if req.Body != nil {
		raw, err := io.ReadAll(req.Body)
		if err != nil {
			return "", err
		}
		_ = req.Body.Close()
		body = raw
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	sum := sha3.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

func replay(ctx echo.Context, stored ports.StoredResponse) error {
	ctx.Response().Header().Set(IdempotentReplayHeader, "true")
	if len(stored.Body) == 0 {
		return ctx.NoContent(stored.Status)
	}
	return ctx.Blob(stored.Status, stored.ContentType, stored.Body)
}

// responseRecorder copies the body written to the client.
type responseRecorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
