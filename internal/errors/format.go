package errors

import (
	"encoding/json"
	"net/http"
)

// ToJSON serializes the error into the OpenAI-style envelope.
func (e *APIError) ToJSON() ([]byte, error) {
	env := Envelope{}
	env.Error.Message = e.Message
	env.Error.Type = e.Type
	env.Error.Code = e.Code
	return json.Marshal(env)
}

// SafeStatus clamps a status code into the 4xx/5xx range for error responses.
func SafeStatus(status int) int {
	if status >= 400 && status <= 599 {
		return status
	}
	return http.StatusInternalServerError
}
