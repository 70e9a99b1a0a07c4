package model

// Progress records how far a user got through one catalog resource.
// Unique per (user, resource); a second write updates in place.
// swagger:model Progress
type Progress struct {
	BaseModel
	UserID     string `gorm:"size:64;uniqueIndex:idx_progress_user_resource;not null" json:"userId"`
	ResourceID uint   `gorm:"uniqueIndex:idx_progress_user_resource;not null" json:"resourceId"`
	Completion int    `gorm:"default:0" json:"completion"`
}

func (Progress) TableName() string {
	return "progress"
}
