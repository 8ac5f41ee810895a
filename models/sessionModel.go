package models

import (
	"time"

	"gorm.io/datatypes"
)

// SessionRecord backs the database session store. Token is the opaque value
// held in the visitor's cookie.
type SessionRecord struct {
	Token     string `gorm:"primaryKey;size:36"`
	Data      datatypes.JSON
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
