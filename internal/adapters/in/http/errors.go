package http

import (
	"errors"
	"net/http"

	"tracking/internal/generated/servers"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps an error kind to its HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrStateIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPaymentMismatch):
		return http.StatusPaymentRequired
	case errors.Is(err, errs.ErrRemoteCallFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx echo.Context, err error) error {
	status := statusOf(err)
	message := err.Error()
	switch status {
	case http.StatusInternalServerError:
		ctx.Logger().Error(err)
		message = http.StatusText(status)
	case http.StatusBadGateway:
		ctx.Logger().Warn(err)
		message = remoteCallMessage(err)
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

// remoteCallMessage names the failed operation and target registry without the cause,
// which may carry internal endpoints or the remote's error text.
func remoteCallMessage(err error) string {
	var remote *errs.RemoteCallFailedError
	if errors.As(err, &remote) {
		return errs.NewRemoteCallFailedError(remote.Target, remote.Operation, nil).Error()
	}
	return errs.ErrRemoteCallFailed.Error()
}

func invalidBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// ErrorHandler renders errors returned by routing, parameter binding and middleware in
// the same shape as use case errors.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message, ok := he.Message.(string)
		if !ok {
			message = http.StatusText(he.Code)
		}
		err = ctx.JSON(he.Code, servers.Error{Code: he.Code, Message: message})
	} else {
		err = writeError(ctx, err)
	}

	if err != nil {
		ctx.Logger().Error(err)
	}
}
