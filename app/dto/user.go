package dto

import "notedeck/app/models"

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserPatch carries a partial update; nil fields are left untouched.
type UserPatch struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserSummary is the join-safe projection of a user, without the password.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

type NoteStats struct {
	TotalNotes     int `json:"totalNotes"`
	ImportantNotes int `json:"importantNotes"`
}

type UserWithNotes struct {
	User  models.User   `json:"user"`
	Notes []models.Note `json:"notes"`
	Stats NoteStats     `json:"stats"`
}
