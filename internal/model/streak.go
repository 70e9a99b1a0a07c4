package model

// Streak tracks consecutive active days per user. LastActiveDate is a
// calendar date string (YYYY-MM-DD) rather than a timestamp so the streak
// transition compares calendar days, immune to timezone and DST drift.
// swagger:model Streak
type Streak struct {
	BaseModel
	UserID         string  `gorm:"size:64;uniqueIndex;not null" json:"userId"`
	CurrentStreak  int     `gorm:"default:0" json:"currentStreak"`
	LastActiveDate *string `gorm:"size:10" json:"lastActiveDate"`
}

func (Streak) TableName() string {
	return "streaks"
}
