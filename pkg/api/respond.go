package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/ontograph/pkg/errors"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response failed", "err", err)
	}
}

// writeError responds with the error's user message and the status mapped
// from its code. Uncoded errors are internal.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(errors.GetCode(err))
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeJSON(w, status, errorResponse{Error: errors.UserMessage(err)})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidJSON, err, "invalid request body")
	}
	return nil
}
