package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Breoliveira30/DevDuo/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteJSON encodes data and writes it with the given status code.
func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError writes the API error shape `{ error, success: false }`.
// Unexpected errors are logged and reported as a generic 500; expected
// errors carry their own status code.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.WriteJSON(w, http.StatusInternalServerError,
			errorResponse{Error: "Erro interno do servidor", Success: false})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		logEvent := r.logger.Error().Int("status", apiErr.StatusCode)
		if apiErr.Cause != nil {
			logEvent = logEvent.AnErr("cause", apiErr.Cause)
		}
		logEvent.Msg(apiErr.Error())
	}

	r.WriteJSON(w, apiErr.StatusCode, errorResponse{Error: apiErr.Error(), Success: false})
}
