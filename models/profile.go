package models

import "time"

// Profile holds the credit balance and plan for one user.
// JSON is camelCase (what the frontend sees), columns are snake_case.
// The tag pair is the only place the two namings meet.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"unique;column:user_id" json:"userId"`
	Credits   int       `gorm:"column:credits" json:"credits"`
	Plan      string    `gorm:"column:plan" json:"plan"` // free | basic | premium | enterprise
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
