package model

import "time"

// User represents an account that can log in and mutate resources.
type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"size:255;not null"`
	LastName  string    `json:"last_name" gorm:"size:255;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // argon2i digest, never plaintext
	CreatedAt time.Time `json:"created_at"`
}
