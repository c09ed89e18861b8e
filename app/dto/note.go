package dto

import "notedeck/app/models"

type CreateNoteRequest struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	IsImportant bool   `json:"isImportant"`
	UserID      uint   `json:"userId"`
}

// NotePatch carries a partial update; nil fields are left untouched.
// CreatedAt is deliberately absent, it is immutable after insert.
type NotePatch struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	IsImportant *bool   `json:"isImportant,omitempty"`
	UserID      *uint   `json:"userId,omitempty"`
}

type NoteWithUser struct {
	Note models.Note `json:"note"`
	User UserSummary `json:"user"`
}

// NotePage is one page of notes plus the pagination metadata.
type NotePage struct {
	Data  []models.Note `json:"data"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int64         `json:"total"`
	Pages int           `json:"pages"`
}

type DeletedCount struct {
	Deleted int64 `json:"deleted"`
}
