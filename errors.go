package mailtm

import "github.com/mailtm/client-go/internal/apierrors"

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidResponse is matched by every failed call: a status outside
	// 200/201/204, a network failure, or a body that does not decode.
	ErrInvalidResponse = apierrors.ErrInvalidResponse

	// ErrMissingToken is returned when a protected method is called with an
	// empty bearer token. No request is sent.
	ErrMissingToken = apierrors.ErrMissingToken

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = apierrors.ErrClientClosed

	// ErrNoDomains is returned when an address must be generated but the
	// domain list is empty.
	ErrNoDomains = apierrors.ErrNoDomains
)

// APIError is a non-success HTTP status. It matches ErrInvalidResponse.
type APIError = apierrors.APIError

// NetworkError is a transport-level failure. It matches ErrInvalidResponse
// and unwraps to the underlying error.
type NetworkError = apierrors.NetworkError

// DecodeError is a success status with an undecodable body. It matches
// ErrInvalidResponse.
type DecodeError = apierrors.DecodeError

// StatusCode returns the HTTP status carried by err, or 0 if there is none.
func StatusCode(err error) int {
	return apierrors.StatusCode(err)
}
