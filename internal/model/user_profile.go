package model

import (
	"gorm.io/datatypes"
)

// UserProfile holds per-user advisor state. One row per user; created lazily
// on first authenticated read.
// swagger:model UserProfile
type UserProfile struct {
	BaseModel
	UserID    string            `gorm:"size:64;uniqueIndex;not null" json:"userId"`
	Name      string            `gorm:"size:255" json:"name"`
	Language  string            `gorm:"size:16;default:'en'" json:"language"`
	Skills    datatypes.JSONMap `json:"skills"`
	Interests datatypes.JSON    `json:"interests"`
	Profile   datatypes.JSONMap `json:"profile"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
