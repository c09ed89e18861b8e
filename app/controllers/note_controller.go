package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"notedeck/app/dto"
	"notedeck/app/services"
)

type NoteController struct {
	Notes *services.NoteService
}

func NewNoteController(notes *services.NoteService) *NoteController {
	return &NoteController{Notes: notes}
}

func (c *NoteController) List(w http.ResponseWriter, r *http.Request) {
	notes, err := c.Notes.List(r.Context())
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (c *NoteController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "")
		return
	}
	if req.Title == "" || req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "title and userId are required", "")
		return
	}
	n, err := c.Notes.Create(r.Context(), req)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (c *NoteController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}
	n, err := c.Notes.Get(r.Context(), id)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if n == nil {
		writeError(w, http.StatusNotFound, "note not found", "")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (c *NoteController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}
	var patch dto.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "")
		return
	}
	n, err := c.Notes.Update(r.Context(), id, patch)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if n == nil {
		writeError(w, http.StatusNotFound, "note not found", "")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (c *NoteController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}
	n, err := c.Notes.Delete(r.Context(), id)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if n == nil {
		writeError(w, http.StatusNotFound, "note not found", "")
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// Search handles /api/notes/search?title=...&important=true.
func (c *NoteController) Search(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	important := r.URL.Query().Get("important") == "true"
	notes, err := c.Notes.Search(r.Context(), title, important)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

// Paginated handles /api/notes/paginated?page=1&limit=10.
func (c *NoteController) Paginated(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	res, err := c.Notes.Paginated(r.Context(), page, limit)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (c *NoteController) WithUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := c.Notes.WithUsers(r.Context())
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
