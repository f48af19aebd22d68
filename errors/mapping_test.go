package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapToGRPCError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code codes.Code
		http int
	}{
		{"duplicate", fmt.Errorf("%w: c1", ErrDuplicateConnection), codes.AlreadyExists, http.StatusConflict},
		{"unknown", fmt.Errorf("%w: c1", ErrUnknownConnection), codes.NotFound, http.StatusNotFound},
		{"missing token", ErrMissingToken, codes.Unauthenticated, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, codes.Unauthenticated, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, codes.PermissionDenied, http.StatusForbidden},
		{"invalid request", fmt.Errorf("%w: group_id", ErrInvalidRequest), codes.InvalidArgument, http.StatusBadRequest},
		{"other", fmt.Errorf("boom"), codes.Internal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := require.New(t)
			st, ok := status.FromError(MapToGRPCError(tc.err))
			req.True(ok)
			req.Equal(tc.code, st.Code())
			req.Equal(tc.http, HTTPStatus(tc.err))
		})
	}
}

func TestMapToGRPCError_KeepsStatusErrors(t *testing.T) {
	req := require.New(t)
	original := status.Error(codes.Unavailable, "down")
	req.Equal(original, MapToGRPCError(original))
	req.NoError(MapToGRPCError(nil))
}

func TestDeliveryErrorsWrapDeliveryFailure(t *testing.T) {
	req := require.New(t)
	req.ErrorIs(ErrConnectionClosed, ErrDeliveryFailure)
	req.ErrorIs(ErrConnectionBackpressure, ErrDeliveryFailure)
	req.ErrorIs(ErrDeliveryTimeout, ErrDeliveryFailure)
}
