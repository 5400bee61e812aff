// Package api provides HTTP client functionality for communicating with the
// mail.tm API. It handles bearer authentication, request/response
// serialization and the status-code policy shared by every endpoint.
//
// # Status Policy
//
// Statuses 200 and 201 are successes whose JSON body is decoded into the
// endpoint's record. 204 is a success with no body; delete endpoints report
// true only for it. Any other status is returned as an
// [apierrors.APIError] without reading the body.
//
// No request is ever retried. Deadlines and cancellation come from the
// caller's context unless [Config.Timeout] is set.
//
// # Error Handling
//
// Every failure matches [apierrors.ErrInvalidResponse]:
//
//	if errors.Is(err, apierrors.ErrInvalidResponse) {
//	    // status outside 200/201/204, transport failure, or bad body
//	}
//
// Use errors.As with [apierrors.APIError] or [apierrors.NetworkError] to
// tell them apart.
//
// # Observability
//
// Requests are counted in the mailtm_client_requests_total and
// mailtm_client_request_duration_seconds Prometheus series, labeled by
// endpoint path template. Each request carries an X-Request-ID header that
// also appears in debug logs.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
