package service

import (
	"testing"

	"storynest_backend/internal/model"
	"storynest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProgressKeepsSingleRecord(t *testing.T) {
	db := setupTestDB(t)
	svc := newReaderService(db)
	user := createTestUser(t, db, "reader@example.com", model.Learner)
	book := createTestBook(t, db, "Single Record")

	require.NoError(t, svc.UpdateProgress(book.ID, user.ID, 3))
	require.NoError(t, svc.UpdateProgress(book.ID, user.ID, 7))
	require.NoError(t, svc.UpdateProgress(book.ID, user.ID, 5))

	var count int64
	db.Model(&model.ReadingProgress{}).
		Where("book_id = ? AND user_id = ?", book.ID, user.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)

	result, err := svc.ReadBook(book.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, result.CurrentProgress.CurrentPage)
	assert.False(t, result.CurrentProgress.LastReadAt.IsZero())
}

func TestUpdateProgressUnknownBook(t *testing.T) {
	db := setupTestDB(t)
	svc := newReaderService(db)
	user := createTestUser(t, db, "reader@example.com", model.Learner)

	err := svc.UpdateProgress(9999, user.ID, 1)
	assert.ErrorIs(t, err, util.ErrBookNotFound)
}

func TestReadBookWithoutHistory(t *testing.T) {
	db := setupTestDB(t)
	svc := newReaderService(db)
	user := createTestUser(t, db, "reader@example.com", model.Learner)
	book := createTestBook(t, db, "Fresh Book")

	result, err := svc.ReadBook(book.ID, user.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, result.CurrentProgress.CurrentPage)
	assert.Empty(t, result.CurrentProgress.Bookmarks)
	assert.Equal(t, 2, result.Completion.Total)
	assert.Equal(t, 0, result.Completion.Completed)
	assert.False(t, result.Completion.AllCompleted)

	// Reading without writing must not create a progress row.
	var count int64
	db.Model(&model.ReadingProgress{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestAddBookmarkAppends(t *testing.T) {
	db := setupTestDB(t)
	svc := newReaderService(db)
	user := createTestUser(t, db, "reader@example.com", model.Learner)
	book := createTestBook(t, db, "Bookmarked")

	require.NoError(t, svc.AddBookmark(book.ID, user.ID, 2, "first"))
	require.NoError(t, svc.AddBookmark(book.ID, user.ID, 2, "second"))

	result, err := svc.ReadBook(book.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, result.CurrentProgress.Bookmarks, 2)
	assert.Equal(t, "first", result.CurrentProgress.Bookmarks[0].Note)
	assert.Equal(t, "second", result.CurrentProgress.Bookmarks[1].Note)
}

func TestCompleteInteractiveAccumulates(t *testing.T) {
	db := setupTestDB(t)
	svc := newReaderService(db)
	user := createTestUser(t, db, "reader@example.com", model.Learner)
	book := createTestBook(t, db, "Quizzes")

	elements := book.AllElements()
	require.Len(t, elements, 2)

	require.NoError(t, svc.CompleteInteractive(book.ID, user.ID, elements[0].ID, 80))
	require.NoError(t, svc.CompleteInteractive(book.ID, user.ID, elements[0].ID, 95))

	var count int64
	db.Model(&model.InteractiveCompletion{}).Count(&count)
	assert.Equal(t, int64(2), count)

	// Repeats of one element only count once toward completion.
	result, err := svc.ReadBook(book.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Completion.Completed)
	assert.False(t, result.Completion.AllCompleted)

	require.NoError(t, svc.CompleteInteractive(book.ID, user.ID, elements[1].ID, 100))

	result, err = svc.ReadBook(book.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Completion.Completed)
	assert.True(t, result.Completion.AllCompleted)
}

func TestSaveMoodWritesBothSides(t *testing.T) {
	db := setupTestDB(t)
	svc := newReaderService(db)
	user := createTestUser(t, db, "reader@example.com", model.Learner)
	book := createTestBook(t, db, "Moody")

	require.NoError(t, svc.SaveMood(book.ID, user.ID, 1, "Delighted"))
	require.NoError(t, svc.SaveMood(book.ID, user.ID, 2, "Calm"))

	result, err := svc.ReadBook(book.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, result.CurrentProgress.Moods, 2)
	assert.Equal(t, "Delighted", result.CurrentProgress.Moods[0].Mood)
	assert.Equal(t, 2, result.CurrentProgress.Moods[1].PageNumber)

	// One user-side log per book, holding both entries.
	var bookMoods []model.BookMood
	require.NoError(t, db.Preload("Moods").Where("user_id = ?", user.ID).Find(&bookMoods).Error)
	require.Len(t, bookMoods, 1)
	assert.Equal(t, book.ID, bookMoods[0].BookID)
	assert.Len(t, bookMoods[0].Moods, 2)
}

func TestSaveMoodUnknownBook(t *testing.T) {
	db := setupTestDB(t)
	svc := newReaderService(db)
	user := createTestUser(t, db, "reader@example.com", model.Learner)

	err := svc.SaveMood(9999, user.ID, 1, "Sad")
	assert.ErrorIs(t, err, util.ErrBookNotFound)
}

func TestSaveMoodUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newReaderService(db)
	book := createTestBook(t, db, "Orphaned")

	err := svc.SaveMood(book.ID, 9999, 1, "Sad")
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	var count int64
	db.Model(&model.MoodEntry{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestProgressIsolatedPerUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newReaderService(db)
	alice := createTestUser(t, db, "alice@example.com", model.Learner)
	bob := createTestUser(t, db, "bob@example.com", model.Learner)
	book := createTestBook(t, db, "Shared Book")

	require.NoError(t, svc.UpdateProgress(book.ID, alice.ID, 9))
	require.NoError(t, svc.AddBookmark(book.ID, alice.ID, 9, "alice's place"))

	bobResult, err := svc.ReadBook(book.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, bobResult.CurrentProgress.CurrentPage)
	assert.Empty(t, bobResult.CurrentProgress.Bookmarks)

	aliceResult, err := svc.ReadBook(book.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, 9, aliceResult.CurrentProgress.CurrentPage)
	assert.Len(t, aliceResult.CurrentProgress.Bookmarks, 1)
}
