package models

// User is a registered owner of notes. The password column is stored and
// returned as opaque text; hashing is a concern of an authentication layer
// this service does not have.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"password"`
}
