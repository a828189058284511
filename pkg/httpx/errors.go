package httpx

import "net/http"

// Error codes map one-to-one onto transport status codes so clients never
// need to inspect message text. Messages are human diagnostics only.
const (
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeBadRequest        = "BAD_REQUEST"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

// Error is the JSON error body for every non-2xx response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`

	status int
}

func (e Error) Error() string { return e.Code + ": " + e.Message }

// WriteError renders the error as JSON with its mapped status code.
func (e Error) WriteError(w http.ResponseWriter) {
	WriteJSON(w, e.status, e)
}

// WithMessage returns a copy of the error carrying a diagnostic message.
func (e Error) WithMessage(msg string) Error {
	e.Message = msg
	return e
}

var (
	ErrUnauthorized = Error{Code: CodeUnauthorized, status: http.StatusUnauthorized}
	ErrForbidden    = Error{Code: CodeForbidden, status: http.StatusForbidden}
	ErrBadRequest   = Error{Code: CodeBadRequest, status: http.StatusBadRequest}
	ErrNotFound     = Error{Code: CodeNotFound, status: http.StatusNotFound}
	ErrConflict     = Error{Code: CodeConflict, status: http.StatusConflict}

	ErrInsufficientFunds = Error{
		Code:   CodeInsufficientFunds,
		status: http.StatusUnprocessableEntity,
	}

	ErrInternal = Error{
		Code:    CodeInternal,
		Message: "something went wrong",
		status:  http.StatusInternalServerError,
	}
)
