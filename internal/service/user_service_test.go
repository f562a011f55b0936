package service

import (
	"testing"

	"storynest_backend/internal/model"
	"storynest_backend/internal/repository"
	"storynest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(repository.NewUserRepository(db), repository.NewMoodRepository(db))
}

func strptr(s string) *string { return &s }

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	user := createTestUser(t, db, "old@example.com", model.Learner)

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{
		Username: strptr("newname"),
		Email:    strptr("New@Example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "newname", updated.Username)
	assert.Equal(t, "new@example.com", updated.Email)

	// Omitted fields stay put.
	updated, err = svc.UpdateProfile(user.ID, ProfileUpdate{Username: strptr("renamed")})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	createTestUser(t, db, "taken@example.com", model.Learner)
	user := createTestUser(t, db, "mine@example.com", model.Learner)

	_, err := svc.UpdateProfile(user.ID, ProfileUpdate{Email: strptr("Taken@Example.com")})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestAdminUpdateUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	user := createTestUser(t, db, "promote@example.com", model.Learner)

	updated, err := svc.UpdateUser(user.ID, AdminUpdate{
		Role:     strptr("staff"),
		Password: strptr("rotated-secret"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.Staff, updated.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("rotated-secret")))

	_, err = svc.UpdateUser(user.ID, AdminUpdate{Role: strptr("overlord")})
	assert.ErrorIs(t, err, util.ErrInvalidRole)
}

func TestDeleteUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)
	user := createTestUser(t, db, "gone@example.com", model.Learner)

	require.NoError(t, svc.DeleteUser(user.ID))

	_, err := svc.GetUserByID(user.ID)
	assert.ErrorIs(t, err, util.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(user.ID), util.ErrUserNotFound)
}

func TestGetMoodsGroupedByBook(t *testing.T) {
	db := setupTestDB(t)
	userSvc := newUserService(db)
	readerSvc := newReaderService(db)
	user := createTestUser(t, db, "moody@example.com", model.Learner)
	first := createTestBook(t, db, "First Book")
	second := createTestBook(t, db, "Second Book")

	require.NoError(t, readerSvc.SaveMood(first.ID, user.ID, 1, "Fascinated"))
	require.NoError(t, readerSvc.SaveMood(first.ID, user.ID, 2, "Delighted"))
	require.NoError(t, readerSvc.SaveMood(second.ID, user.ID, 1, "Frustrated"))

	moods, err := userSvc.GetMoods(user.ID)
	require.NoError(t, err)
	require.Len(t, moods, 2)

	byBook := map[uint][]model.UserMoodEntry{}
	for _, bm := range moods {
		byBook[bm.BookID] = bm.Moods
	}
	require.Len(t, byBook[first.ID], 2)
	assert.Equal(t, "Fascinated", byBook[first.ID][0].Mood)
	require.Len(t, byBook[second.ID], 1)
	assert.Equal(t, "Frustrated", byBook[second.ID][0].Mood)
}
