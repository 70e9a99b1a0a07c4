package model

import "time"

// Session is a read-only view of the identity provider's session table.
// Rows are issued and refreshed by the external auth service; this backend
// only resolves bearer tokens against them.
type Session struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"size:255;uniqueIndex;not null" json:"-"`
	UserID    string    `gorm:"size:64;index;not null" json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Session) TableName() string {
	return "sessions"
}
