package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mcalvert/outings-api/internal/config"
	"github.com/mcalvert/outings-api/internal/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector

	// Use PostgreSQL if URL starts with postgres, otherwise SQLite
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.Note{},
		&models.Comment{},
		&models.Emoticon{},
		&models.NoteEmoticon{},
	)
}

// defaultEmoticons is the fixed reaction palette offered on notes.
var defaultEmoticons = []models.Emoticon{
	{Name: "Heart", Emoji: "❤️"},
	{Name: "Thumbs Up", Emoji: "\U0001F44D"},
	{Name: "Thumbs Down", Emoji: "\U0001F44E"},
	{Name: "Eye Roll", Emoji: "\U0001F644"},
	{Name: "Happy", Emoji: "\U0001F60A"},
	{Name: "Sad", Emoji: "\U0001F622"},
	{Name: "Thinking", Emoji: "\U0001F914"},
	{Name: "Excited", Emoji: "\U0001F929"},
	{Name: "Question", Emoji: "❓"},
	{Name: "Important", Emoji: "❗"},
	{Name: "Check", Emoji: "✅"},
}

// Seed inserts the emoticon palette on first boot. Already-seeded names
// are left alone.
func Seed() error {
	for _, e := range defaultEmoticons {
		var existing models.Emoticon
		if err := DB.Where("name = ?", e.Name).First(&existing).Error; err == nil {
			continue
		}
		emoticon := e
		if err := DB.Create(&emoticon).Error; err != nil {
			return err
		}
	}
	return nil
}
