package models

type User struct {
	BaseModel

	Email        string `gorm:"size:150;uniqueIndex;not null"`
	FirstName    string `gorm:"size:150;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	// Relationships
	Notes []Note `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
