package errors

// APIError represents a standardized error returned by the proxy itself.
// Upstream error payloads are never wrapped into this shape; they are
// relayed verbatim with their original status code.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
	Type       string
}

// Envelope mirrors the OpenAI-style error envelope used for all
// proxy-originated error responses.
type Envelope struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
}

func New(httpStatus int, code, errType, message string) *APIError {
	return &APIError{HTTPStatus: httpStatus, Code: code, Type: errType, Message: message}
}

func (e *APIError) Error() string { return e.Message }
