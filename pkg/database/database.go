package database

import (
	"encoding/json"
	"fmt"
	"log"

	"storynest_backend/internal/config"
	"storynest_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
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
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Book{},
		&model.Page{},
		&model.InteractiveElement{},
		&model.ReadingProgress{},
		&model.Bookmark{},
		&model.InteractiveCompletion{},
		&model.MoodEntry{},
		&model.BookMood{},
		&model.UserMoodEntry{},
	)
}

// SeedDefaults inserts a bootstrap administrator and sample books when the
// corresponding tables are empty.
func SeedDefaults(db *gorm.DB) error {
	var userCount int64
	db.Model(&model.User{}).Count(&userCount)
	if userCount == 0 {
		hashed, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			Username: "admin",
			Email:    "admin@storynest.local",
			Password: string(hashed),
			Role:     model.Administrator,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
		log.Println("Seeded default administrator account (admin@storynest.local)")
	}

	var bookCount int64
	db.Model(&model.Book{}).Count(&bookCount)
	if bookCount == 0 {
		for _, b := range sampleBooks() {
			if err := db.Create(b).Error; err != nil {
				return err
			}
		}
		log.Println("Seeded sample books")
	}

	return nil
}

func quizPayload(v interface{}) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

func sampleBooks() []*model.Book {
	return []*model.Book{
		{
			Title:        "The Magic of Reading",
			Author:       "John Smith",
			Description:  "A wonderful journey into the world of books and imagination",
			CoverImage:   "/uploads/covers/magic-of-reading.jpg",
			Content:      "Sample content for the book...",
			AgeMin:       8,
			AgeMax:       12,
			Genres:       model.StringList{"Adventure", "Educational"},
			ReadingLevel: model.Intermediate,
			Pages: []model.Page{
				{
					Position: 0,
					Content:  "Chapter 1: The Beginning... Once upon a time in a magical library, there lived a book that could transport readers to different worlds.",
					ImageURL: "/uploads/pages/magic-1.jpg",
					AudioURL: "/uploads/audio/magic-1.mp3",
					Elements: []model.InteractiveElement{
						{
							Position: 0,
							Kind:     model.QuizElement,
							Content: quizPayload(map[string]interface{}{
								"type":           "dragDrop",
								"text":           "Complete the sentence: The magical book could ____ readers to ____ worlds.",
								"options":        []string{"transport", "different"},
								"blanks":         2,
								"correctAnswers": []string{"transport", "different"},
							}),
						},
						{
							Position: 1,
							Kind:     model.QuizElement,
							Content: quizPayload(map[string]interface{}{
								"type":          "yesNo",
								"question":      "Did the story take place in a magical library?",
								"correctAnswer": "yes",
							}),
						},
					},
				},
				{
					Position: 1,
					Content:  "Chapter 2: The Journey Continues... As our young hero turned the page, the magical book began to glow with a bright, golden light.",
					ImageURL: "/uploads/pages/magic-2.jpg",
					AudioURL: "/uploads/audio/magic-2.mp3",
					Elements: []model.InteractiveElement{
						{
							Position: 0,
							Kind:     model.QuizElement,
							Content: quizPayload(map[string]interface{}{
								"type":     "openQuestion",
								"question": "What do you think will happen when the book starts to glow?",
								"hint":     "Think about what magical things might occur...",
							}),
						},
					},
				},
			},
		},
		{
			Title:        "Forest Friends",
			Author:       "Mary Johnson",
			Description:  "Meet the animals of the old oak forest and help them through the seasons",
			CoverImage:   "/uploads/covers/forest-friends.jpg",
			Content:      "Sample content for the book...",
			AgeMin:       5,
			AgeMax:       8,
			Genres:       model.StringList{"Animals", "Nature"},
			ReadingLevel: model.Beginner,
			Pages: []model.Page{
				{
					Position: 0,
					Content:  "Deep in the old oak forest, a little fox woke up to the first snow of winter.",
					ImageURL: "/uploads/pages/forest-1.jpg",
					Elements: []model.InteractiveElement{
						{
							Position: 0,
							Kind:     model.GameElement,
							Content: quizPayload(map[string]interface{}{
								"type": "matching",
								"goal": "Match each animal to its winter home",
							}),
						},
					},
				},
			},
		},
	}
}
