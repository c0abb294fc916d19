// Package dto holds the JSON shapes of the planner HTTP API.
package dto

// ErrorResponse is the body of every non-2xx response. Code carries the
// domain error code (GOL-, ALC-, PLN- or AUTH-) when one applies.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
