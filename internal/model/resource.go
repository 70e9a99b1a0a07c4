package model

type ResourceType string

const (
	Course  ResourceType = "course"
	Video   ResourceType = "video"
	Article ResourceType = "article"
	Book    ResourceType = "book"
)

// ValidResourceType reports whether t is one of the catalog types.
func ValidResourceType(t string) bool {
	switch ResourceType(t) {
	case Course, Video, Article, Book:
		return true
	}
	return false
}

// Resource is read-only catalog reference data, seeded at migration.
// swagger:model Resource
type Resource struct {
	BaseModel
	Title  string       `gorm:"size:255;not null" json:"title"`
	URL    string       `gorm:"size:255;not null" json:"url"`
	Type   ResourceType `gorm:"size:16;not null" json:"type"`
	Tags   string       `gorm:"size:255" json:"tags"`
	Locale string       `gorm:"size:16;default:'en'" json:"locale"`
}

func (Resource) TableName() string {
	return "resources"
}
