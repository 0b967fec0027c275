package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/drawdeck-dev/drawdeck/shared/errors"
	"github.com/drawdeck-dev/drawdeck/shared/logger"
)

type errorBody struct {
	Error string `json:"error"`
}

// WriteError writes the `{"error": <message>}` body every endpoint uses.
// Errors without an explicit status code become a generic 500 so internals
// never leak to the client.
func WriteError(w http.ResponseWriter, err error) {
	status := errors.StatusCode(err, http.StatusInternalServerError)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Log.Error("internal error", "error", err)
		message = "Server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: message})
}

// WriteJSON writes v with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}

// DecodeValidate decodes a JSON body and runs validator struct tags on it.
func DecodeValidate(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: http.StatusBadRequest}
	}
	return nil
}

// Decode decodes a JSON body without validation. An absent body leaves the
// target at its zero value, so optional-body endpoints accept empty requests.
func Decode(r io.Reader, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		if err == io.EOF {
			return nil
		}
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: http.StatusBadRequest}
	}
	return nil
}
