package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"notedeck/app/repo"
	"notedeck/global"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg, field string) {
	writeJSON(w, code, errorBody{Error: msg, Field: field})
}

// writeStorageError maps the DAL error kinds to status codes: constraint
// violations are the client's conflict, everything else is ours.
func writeStorageError(w http.ResponseWriter, err error) {
	var ce *repo.ConstraintError
	if errors.As(err, &ce) {
		msg := "already exists"
		if ce.Kind == repo.ConstraintForeignKey {
			msg = "referenced row does not exist"
		}
		writeError(w, http.StatusConflict, msg, ce.Field)
		return
	}
	global.Logger.Error().Err(err).Msg("storage failure")
	writeError(w, http.StatusInternalServerError, "storage failure", "")
}

func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}
