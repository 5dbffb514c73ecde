package models

import "time"

// Project is one saved rewrite: the pasted text and what the humanizer
// made of it. Deleting is permanent, there is no trash bin.
type Project struct {
	ID            string    `gorm:"primaryKey" json:"id"` // uuid, set by the service
	UserID        uint      `gorm:"index;column:user_id" json:"userId"`
	Title         string    `gorm:"column:title" json:"title"`
	OriginalText  string    `gorm:"column:original_text" json:"originalText"`
	HumanizedText string    `gorm:"column:humanized_text" json:"humanizedText"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
