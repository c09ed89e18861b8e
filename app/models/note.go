package models

import "time"

// Note belongs to a User. Deleting the user removes the user's notes through
// the ON DELETE CASCADE constraint; the application never cascades by hand.
//
// created_at is persisted as epoch seconds (INTEGER column) and surfaces as a
// time.Time. It is stamped by the repository at insert time and never taken
// from the caller.
type Note struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	IsImportant bool      `gorm:"column:is_important;type:integer;not null;default:0" json:"isImportant"`
	UserID      uint      `gorm:"column:user_id;not null;index" json:"userId"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;type:integer;not null;serializer:epoch" json:"createdAt"`
}

func (Note) TableName() string { return "notes" }
