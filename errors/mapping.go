package errors

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError converts relay errors into gRPC status errors.
// Unknown errors become codes.Internal.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(code(err), err.Error())
}

func code(err error) codes.Code {
	switch {
	case errors.Is(err, ErrDuplicateConnection):
		return codes.AlreadyExists
	case errors.Is(err, ErrUnknownConnection):
		return codes.NotFound
	case errors.Is(err, ErrMissingToken), errors.Is(err, ErrInvalidToken):
		return codes.Unauthenticated
	case errors.Is(err, ErrForbidden):
		return codes.PermissionDenied
	case errors.Is(err, ErrInvalidRequest):
		return codes.InvalidArgument
	default:
		return codes.Internal
	}
}

// HTTPStatus is the HTTP counterpart of MapToGRPCError.
func HTTPStatus(err error) int {
	switch code(err) {
	case codes.AlreadyExists:
		return http.StatusConflict
	case codes.NotFound:
		return http.StatusNotFound
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.PermissionDenied:
		return http.StatusForbidden
	case codes.InvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
