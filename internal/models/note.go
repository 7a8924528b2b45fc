package models

import (
	"time"

	"github.com/monocle-dev/notebook/internal/types"
)

const (
	MaxTitleLength = 100
	MaxBodyLength  = 500
)

type Note struct {
	BaseModel

	Title  string    `gorm:"size:100;not null"`
	Body   string    `gorm:"size:500;not null"`
	Date   time.Time `gorm:"not null;index"` // Stamped on create and on every edit
	UserID uint      `gorm:"not null;index"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Stamp renders the note date the way it is shown to users.
func (n Note) Stamp() string {
	return n.Date.Format(types.DateStampLayout)
}
