package database

import (
	"fmt"
	"log"

	"career_advisor_backend/internal/config"
	"career_advisor_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the schema and seeds the resource catalog when empty.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Session{},
		&model.UserProfile{},
		&model.Assessment{},
		&model.Streak{},
		&model.Task{},
		&model.Progress{},
		&model.Rating{},
		&model.Recommendation{},
		&model.Resource{},
	)
	if err != nil {
		return err
	}

	return seedResources(db)
}

func seedResources(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Resource{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	resources := []model.Resource{
		{Title: "Go by Example", URL: "https://gobyexample.com", Type: model.Course, Tags: "go,programming,backend", Locale: "en"},
		{Title: "SQL Fundamentals", URL: "https://example.com/sql-fundamentals", Type: model.Course, Tags: "sql,data,analysis", Locale: "en"},
		{Title: "Intro to Data Analysis", URL: "https://example.com/data-analysis", Type: model.Video, Tags: "data,analysis,statistics", Locale: "en"},
		{Title: "Design Thinking Basics", URL: "https://example.com/design-thinking", Type: model.Article, Tags: "design,creativity,ux", Locale: "en"},
		{Title: "The Pragmatic Programmer", URL: "https://example.com/pragmatic-programmer", Type: model.Book, Tags: "programming,career,tech", Locale: "en"},
		{Title: "Public Speaking Crash Course", URL: "https://example.com/public-speaking", Type: model.Video, Tags: "communication,leadership", Locale: "en"},
		{Title: "Team Leadership Essentials", URL: "https://example.com/team-leadership", Type: model.Course, Tags: "leadership,management", Locale: "en"},
		{Title: "Writing for Engineers", URL: "https://example.com/writing-for-engineers", Type: model.Article, Tags: "communication,writing,tech", Locale: "en"},
		{Title: "Creative Portfolio Guide", URL: "https://example.com/portfolio-guide", Type: model.Article, Tags: "creativity,design,career", Locale: "en"},
		{Title: "Estadística para Todos", URL: "https://example.com/estadistica", Type: model.Course, Tags: "data,analysis,statistics", Locale: "es"},
	}

	if err := db.Create(&resources).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d catalog resources", len(resources))
	return nil
}
