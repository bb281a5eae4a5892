package server

import (
	"encoding/json"
	"net/http"

	"github.com/and161185/dashboard/internal/actions"
)

func (srv *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		srv.deps.Logger.Errorf("encode response: %v", err)
	}
}

// writeResult turns a mutation result into a response: navigation becomes a
// 303 redirect, failures carry the form state.
func (srv *Server) writeResult(w http.ResponseWriter, r *http.Request, res actions.Result) {
	switch res.Kind {
	case actions.ResultSuccess:
		if res.NavigateTo != "" {
			http.Redirect(w, r, res.NavigateTo, http.StatusSeeOther)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	case actions.ResultValidationFailed:
		srv.writeJSON(w, http.StatusUnprocessableEntity, res.State)
	default:
		srv.writeJSON(w, http.StatusInternalServerError, res.State)
	}
}
