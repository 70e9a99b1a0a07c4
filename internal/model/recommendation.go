package model

import (
	"gorm.io/datatypes"
)

// Recommendation stores the latest generated career/resource suggestions for
// a user. One row per user; writes replace the previous set.
// swagger:model Recommendation
type Recommendation struct {
	BaseModel
	UserID    string         `gorm:"size:64;uniqueIndex;not null" json:"userId"`
	Careers   datatypes.JSON `json:"careers"`
	Resources datatypes.JSON `json:"resources"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
