package service

import (
	"testing"

	"storynest_backend/internal/model"
	"storynest_backend/internal/repository"
	"storynest_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newCatalogService(db *gorm.DB) *CatalogService {
	return NewCatalogService(repository.NewBookRepository(db), nil)
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	books := []*model.Book{
		{
			Title: "Dragon Tales", Author: "Ann Reed", Description: "Dragons and castles",
			CoverImage: "/c/1.jpg", AgeMin: 8, AgeMax: 12,
			Genres: model.StringList{"Fantasy", "Adventure"}, ReadingLevel: model.Intermediate,
		},
		{
			Title: "Tiny Paws", Author: "Ben Ochoa", Description: "A kitten finds a home",
			CoverImage: "/c/2.jpg", AgeMin: 5, AgeMax: 8,
			Genres: model.StringList{"Animals"}, ReadingLevel: model.Beginner,
		},
		{
			Title: "Star Atlas", Author: "Cara Voss", Description: "A guide to the night sky",
			CoverImage: "/c/3.jpg", AgeMin: 10, AgeMax: 14,
			Genres: model.StringList{"Science", "Adventure"}, ReadingLevel: model.Advanced,
		},
	}
	for _, b := range books {
		require.NoError(t, db.Create(b).Error)
	}
}

func titles(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.Title)
	}
	return out
}

func TestListBooksNoFilter(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	svc := newCatalogService(db)

	books, err := svc.ListBooks(CatalogFilter{})
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestListBooksAgeFilter(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	svc := newCatalogService(db)

	// Age 10 must match every book whose range contains it, inclusive.
	books, err := svc.ListBooks(CatalogFilter{Age: 10})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Dragon Tales", "Star Atlas"}, titles(books))

	books, err = svc.ListBooks(CatalogFilter{Age: 5})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Tiny Paws"}, titles(books))
}

func TestListBooksGenreIntersection(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	svc := newCatalogService(db)

	books, err := svc.ListBooks(CatalogFilter{Genres: []string{"Adventure"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Dragon Tales", "Star Atlas"}, titles(books))

	// Any overlap qualifies, not all tags.
	books, err = svc.ListBooks(CatalogFilter{Genres: []string{"Animals", "Science"}})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Tiny Paws", "Star Atlas"}, titles(books))

	books, err = svc.ListBooks(CatalogFilter{Genres: []string{"Horror"}})
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestListBooksSearchCaseInsensitive(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	svc := newCatalogService(db)

	books, err := svc.ListBooks(CatalogFilter{Search: "DRAGON"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Dragon Tales"}, titles(books))

	// Matches description text too.
	books, err = svc.ListBooks(CatalogFilter{Search: "night sky"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Star Atlas"}, titles(books))
}

func TestListBooksConjunctiveFilters(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	svc := newCatalogService(db)

	books, err := svc.ListBooks(CatalogFilter{
		Age:          10,
		Genres:       []string{"Adventure"},
		ReadingLevel: "Advanced",
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Star Atlas"}, titles(books))
}

func TestGetBookNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	_, err := svc.GetBook(404)
	assert.ErrorIs(t, err, util.ErrBookNotFound)
}

func TestCreateBookValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	base := func() *model.Book {
		return &model.Book{
			Title: "T", Author: "A", Description: "D", CoverImage: "/c.jpg",
			AgeMin: 6, AgeMax: 10, ReadingLevel: model.Beginner,
		}
	}

	tooYoung := base()
	tooYoung.AgeMin = 3
	assert.ErrorIs(t, svc.CreateBook(tooYoung), util.ErrInvalidAgeRange)

	inverted := base()
	inverted.AgeMin, inverted.AgeMax = 12, 8
	assert.ErrorIs(t, svc.CreateBook(inverted), util.ErrInvalidAgeRange)

	badLevel := base()
	badLevel.ReadingLevel = "Expert"
	assert.ErrorIs(t, svc.CreateBook(badLevel), util.ErrInvalidReadingLvl)

	require.NoError(t, svc.CreateBook(base()))
}

func TestCreateBookAssignsPagePositions(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	book := &model.Book{
		Title: "Ordered", Author: "A", Description: "D", CoverImage: "/c.jpg",
		AgeMin: 6, AgeMax: 10, ReadingLevel: model.Beginner,
		Pages: []model.Page{{Content: "one"}, {Content: "two"}, {Content: "three"}},
	}
	require.NoError(t, svc.CreateBook(book))

	stored, err := svc.GetBook(book.ID)
	require.NoError(t, err)
	require.Len(t, stored.Pages, 3)
	for i, p := range stored.Pages {
		assert.Equal(t, i, p.Position)
	}
}

func TestElementOrderSurvivesReload(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)

	// Element ids chosen so that sorting by id would invert authored order.
	book := &model.Book{
		Title: "Ordered Elements", Author: "A", Description: "D", CoverImage: "/c.jpg",
		AgeMin: 6, AgeMax: 10, ReadingLevel: model.Beginner,
		Pages: []model.Page{{
			Content: "page",
			Elements: []model.InteractiveElement{
				{
					UUIDBase: model.UUIDBase{ID: "zzz-first-authored"},
					Kind:     model.QuizElement,
					Content:  datatypes.JSON(`{"type":"yesNo","question":"First?","correctAnswer":"yes"}`),
				},
				{
					UUIDBase: model.UUIDBase{ID: "aaa-second-authored"},
					Kind:     model.GameElement,
					Content:  datatypes.JSON(`{"type":"matching","goal":"Second"}`),
				},
			},
		}},
	}
	require.NoError(t, svc.CreateBook(book))

	stored, err := svc.GetBook(book.ID)
	require.NoError(t, err)
	require.Len(t, stored.Pages, 1)
	elements := stored.Pages[0].Elements
	require.Len(t, elements, 2)

	assert.Equal(t, "zzz-first-authored", elements[0].ID)
	assert.Equal(t, 0, elements[0].Position)
	assert.Equal(t, "aaa-second-authored", elements[1].ID)
	assert.Equal(t, 1, elements[1].Position)
}

func TestUpdateBookPartial(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	book := createTestBook(t, db, "Original Title")

	newTitle := "New Title"
	updated, err := svc.UpdateBook(book.ID, BookUpdate{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, book.Author, updated.Author)
	assert.Equal(t, book.AgeMin, updated.AgeMin)

	// Pages untouched when the update omits them.
	stored, err := svc.GetBook(book.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Pages, 2)
}

func TestUpdateBookReplacesPages(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	book := createTestBook(t, db, "Repaginated")

	_, err := svc.UpdateBook(book.ID, BookUpdate{
		Pages: []model.Page{{Content: "only page"}},
	})
	require.NoError(t, err)

	stored, err := svc.GetBook(book.ID)
	require.NoError(t, err)
	require.Len(t, stored.Pages, 1)
	assert.Equal(t, "only page", stored.Pages[0].Content)
	assert.Equal(t, 0, stored.Pages[0].Position)

	// Old pages' elements must not survive the replacement.
	var elementCount int64
	db.Model(&model.InteractiveElement{}).Count(&elementCount)
	assert.Equal(t, int64(0), elementCount)
}

func TestDeleteBook(t *testing.T) {
	db := setupTestDB(t)
	svc := newCatalogService(db)
	book := createTestBook(t, db, "Doomed")

	require.NoError(t, svc.DeleteBook(book.ID))

	_, err := svc.GetBook(book.ID)
	assert.ErrorIs(t, err, util.ErrBookNotFound)

	assert.ErrorIs(t, svc.DeleteBook(book.ID), util.ErrBookNotFound)
}
