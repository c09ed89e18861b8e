package controllers

import (
	"encoding/json"
	"net/http"

	"notedeck/app/dto"
	"notedeck/app/services"
)

type UserController struct {
	Users *services.UserService
	Notes *services.NoteService
}

func NewUserController(users *services.UserService, notes *services.NoteService) *UserController {
	return &UserController{Users: users, Notes: notes}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.List(r.Context())
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required", "")
		return
	}
	u, err := c.Users.Create(r.Context(), req.Username, req.Password)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}
	u, err := c.Users.Get(r.Context(), id)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if u == nil {
		writeError(w, http.StatusNotFound, "user not found", "")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}
	var patch dto.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body", "")
		return
	}
	u, err := c.Users.Update(r.Context(), id, patch)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if u == nil {
		writeError(w, http.StatusNotFound, "user not found", "")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}
	u, err := c.Users.Delete(r.Context(), id)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if u == nil {
		writeError(w, http.StatusNotFound, "user not found", "")
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) ListNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}
	notes, err := c.Notes.ListByUser(r.Context(), id)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notes)
}

func (c *UserController) DeleteNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}
	count, err := c.Notes.DeleteByUser(r.Context(), id)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DeletedCount{Deleted: count})
}

func (c *UserController) WithNotes(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid id", "")
		return
	}
	res, err := c.Users.WithNotes(r.Context(), id)
	if err != nil {
		writeStorageError(w, err)
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "user not found", "")
		return
	}
	writeJSON(w, http.StatusOK, res)
}
