package httpresponse

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	errs "gomoku_exe/internal/errors"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

const INTERNALERRORJSON = "{\"error\": \"Internal server error\"}"

func WriteJSON(log *zap.SugaredLogger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("writeJSON encode error: %v", err)
	}
}

func WriteJSONError(log *zap.SugaredLogger, w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
	log.Debugf("writeJSONError: %s", msg)
}

// WriteError picks the status code from the error's sentinel. Server-side
// failures are logged and hidden from the client.
func WriteError(log *zap.SugaredLogger, w http.ResponseWriter, err error) {
	switch {
	case errs.IsInvalidRequest(err):
		WriteJSONError(log, w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrDecisionNotFound):
		WriteJSONError(log, w, http.StatusNotFound, err.Error())
	default:
		log.Errorf("request failed: %v", err)
		WriteInternalErrorResponse(w)
	}
}

func WriteInternalErrorResponse(w http.ResponseWriter) {
	// like http.Error, but with a JSON content type
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = fmt.Fprintln(w, INTERNALERRORJSON)
}
