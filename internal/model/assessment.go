package model

import (
	"gorm.io/datatypes"
)

// Assessment is an append-only record of one completed quiz. Rows are never
// updated; the latest result is mirrored into the user's profile on create.
// swagger:model Assessment
type Assessment struct {
	BaseModel
	UserID  string         `gorm:"size:64;index;not null" json:"userId"`
	Answers datatypes.JSON `json:"answers"`
	Result  datatypes.JSON `json:"result"`
}

func (Assessment) TableName() string {
	return "assessments"
}
