package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrDuplicateConnection = fmt.Errorf("connection already registered")
	ErrUnknownConnection   = fmt.Errorf("connection not registered")

	ErrDeliveryFailure        = fmt.Errorf("delivery failure")
	ErrConnectionClosed       = fmt.Errorf("%w: connection closed", ErrDeliveryFailure)
	ErrConnectionBackpressure = fmt.Errorf("%w: connection buffer full", ErrDeliveryFailure)
	ErrDeliveryTimeout        = fmt.Errorf("%w: delivery timed out", ErrDeliveryFailure)

	ErrMissingToken = fmt.Errorf("authorization token is missing")
	ErrInvalidToken = fmt.Errorf("invalid or expired token")
	ErrForbidden    = fmt.Errorf("caller is not allowed to perform this action")

	ErrInvalidRequest = fmt.Errorf("invalid request")
)
