package model

import (
	"time"
)

// BaseModel is shared by every table. Rows are hard-deleted (no soft-delete
// column) because several tables carry unique owner indexes that a tombstone
// row would block.
// swagger:model
type BaseModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
