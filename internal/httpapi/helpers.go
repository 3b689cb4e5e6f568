package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"enertek-backend-go/internal/services"

	"github.com/go-chi/chi/v5"
)

func parseID(r *http.Request, param string) (int64, bool) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseLimit(r *http.Request) int {
	raw := chi.URLParam(r, "limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// decodeValid decodes the JSON body into dst and runs the struct validator.
func (s *Server) decodeValid(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return services.ErrBadRequest("Invalid payload")
	}
	if err := s.validate.Struct(dst); err != nil {
		return services.ErrBadRequest(err.Error())
	}
	return nil
}

// writeServiceError maps a services.ServiceError onto its HTTP status and
// everything else onto a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if serr, ok := err.(services.ServiceError); ok {
		WriteError(w, serr.Status, serr.Message)
		return
	}
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}

func writeDeleteOutcome(w http.ResponseWriter, outcome services.DeleteOutcome) {
	switch outcome.Kind {
	case services.DeleteOK:
		w.WriteHeader(http.StatusNoContent)
	case services.DeleteConflict:
		WriteError(w, http.StatusBadRequest, outcome.Reason)
	default:
		WriteError(w, http.StatusInternalServerError, outcome.Reason)
	}
}
