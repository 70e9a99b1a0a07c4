package model

// Task is a single daily learning task. DueDate is a calendar date string
// (YYYY-MM-DD, nullable) matched by string equality against "today".
// swagger:model Task
type Task struct {
	BaseModel
	UserID  string  `gorm:"size:64;index;not null" json:"userId"`
	Label   string  `gorm:"size:255;not null" json:"label"`
	Skill   *string `gorm:"size:64" json:"skill"`
	Done    bool    `gorm:"default:false" json:"done"`
	DueDate *string `gorm:"size:10" json:"dueDate"`
}

func (Task) TableName() string {
	return "tasks"
}
