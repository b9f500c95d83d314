/*
Package response owns the HTTP shape of the API: plain DTO bodies on
success and a small error envelope on failure. HTTP status mapping
lives here and nowhere else.
*/
package response

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// ErrorResponse is the error envelope. Error carries the stable code,
// Message the user-visible text.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}
