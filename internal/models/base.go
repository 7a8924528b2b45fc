package models

import "time"

// BaseModel is gorm.Model without soft deletes: a deleted note is gone.
type BaseModel struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
