package service

import (
	"testing"

	"storynest_backend/internal/model"
	"storynest_backend/internal/repository"
	"storynest_backend/pkg/database"
	applogger "storynest_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if applogger.Log == nil {
		applogger.Log = zap.NewNop()
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string, role model.UserRole) *model.User {
	t.Helper()
	user := &model.User{
		Username: "tester",
		Email:    email,
		Password: "hashed-not-used",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestBook(t *testing.T, db *gorm.DB, title string) *model.Book {
	t.Helper()
	book := &model.Book{
		Title:        title,
		Author:       "Test Author",
		Description:  "A test book",
		CoverImage:   "/uploads/covers/test.jpg",
		AgeMin:       6,
		AgeMax:       10,
		Genres:       model.StringList{"Adventure"},
		ReadingLevel: model.Beginner,
		Pages: []model.Page{
			{
				Position: 0,
				Content:  "Page one",
				Elements: []model.InteractiveElement{
					{Kind: model.QuizElement, Content: datatypes.JSON(`{"type":"yesNo","question":"Ready?","correctAnswer":"yes"}`)},
				},
			},
			{
				Position: 1,
				Content:  "Page two",
				Elements: []model.InteractiveElement{
					{Kind: model.GameElement, Content: datatypes.JSON(`{"type":"matching","goal":"Match pairs"}`)},
				},
			},
		},
	}
	require.NoError(t, db.Create(book).Error)
	return book
}

func newReaderService(db *gorm.DB) *ReaderService {
	return NewReaderService(
		repository.NewBookRepository(db),
		repository.NewProgressRepository(db),
		repository.NewMoodRepository(db),
		repository.NewUserRepository(db),
		db,
	)
}
