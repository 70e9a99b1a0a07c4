package model

// Rating is a 1-5 star review of a catalog resource, unique per
// (user, resource).
// swagger:model Rating
type Rating struct {
	BaseModel
	UserID     string  `gorm:"size:64;uniqueIndex:idx_rating_user_resource;not null" json:"userId"`
	ResourceID uint    `gorm:"uniqueIndex:idx_rating_user_resource;not null" json:"resourceId"`
	Rating     int     `gorm:"not null" json:"rating"`
	Comment    *string `gorm:"type:text" json:"comment"`
}

func (Rating) TableName() string {
	return "ratings"
}
