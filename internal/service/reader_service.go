package service

import (
	"time"

	"storynest_backend/internal/model"
	"storynest_backend/internal/repository"
	"storynest_backend/internal/util"

	"gorm.io/gorm"
)

// ReaderService merges incremental reading events (page position, bookmarks,
// interactive completions, mood reports) into the caller's per-book progress
// record. Every write is an upsert against the single (user, book) row.
type ReaderService struct {
	BookRepo     *repository.BookRepository
	ProgressRepo *repository.ProgressRepository
	MoodRepo     *repository.MoodRepository
	UserRepo     *repository.UserRepository
	DB           *gorm.DB
}

func NewReaderService(
	bookRepo *repository.BookRepository,
	progressRepo *repository.ProgressRepository,
	moodRepo *repository.MoodRepository,
	userRepo *repository.UserRepository,
	db *gorm.DB,
) *ReaderService {
	return &ReaderService{
		BookRepo:     bookRepo,
		ProgressRepo: progressRepo,
		MoodRepo:     moodRepo,
		UserRepo:     userRepo,
		DB:           db,
	}
}

// CompletionSummary is the server-side view of the "all activities done"
// state, computed from persisted completions against the book's flattened
// element list.
type CompletionSummary struct {
	Total        int  `json:"total"`
	Completed    int  `json:"completed"`
	AllCompleted bool `json:"allCompleted"`
}

// ReadBookResult is the reader payload: the book plus only the caller's own
// progress, never anyone else's.
type ReadBookResult struct {
	Book            *model.Book            `json:"book"`
	CurrentProgress *model.ReadingProgress `json:"currentProgress"`
	Completion      CompletionSummary      `json:"completion"`
}

func (s *ReaderService) ReadBook(bookID, userID uint) (*ReadBookResult, error) {
	book, err := s.findBook(bookID)
	if err != nil {
		return nil, err
	}

	progress, err := s.ProgressRepo.FindForUser(bookID, userID)
	if err == gorm.ErrRecordNotFound {
		progress = &model.ReadingProgress{BookID: bookID, UserID: userID, CurrentPage: 0}
	} else if err != nil {
		return nil, err
	}

	summary, err := s.completionSummary(book, progress)
	if err != nil {
		return nil, err
	}

	return &ReadBookResult{
		Book:            book,
		CurrentProgress: progress,
		Completion:      summary,
	}, nil
}

// UpdateProgress upserts the caller's current page and refreshes the
// last-read timestamp. The page value is stored as-is, without a bounds
// check against the book's page count.
func (s *ReaderService) UpdateProgress(bookID, userID uint, currentPage int) error {
	if _, err := s.findBook(bookID); err != nil {
		return err
	}

	progress, err := s.ProgressRepo.FindOrCreate(nil, bookID, userID)
	if err != nil {
		return err
	}

	progress.CurrentPage = currentPage
	progress.LastReadAt = time.Now()
	return s.ProgressRepo.Save(nil, progress)
}

// AddBookmark appends a bookmark to the caller's progress record. Bookmarks
// are never de-duplicated by page.
func (s *ReaderService) AddBookmark(bookID, userID uint, page int, note string) error {
	if _, err := s.findBook(bookID); err != nil {
		return err
	}

	progress, err := s.ProgressRepo.FindOrCreate(nil, bookID, userID)
	if err != nil {
		return err
	}

	return s.ProgressRepo.AddBookmark(nil, &model.Bookmark{
		ProgressID: progress.ID,
		Page:       page,
		Note:       note,
	})
}

// CompleteInteractive appends a completion record. A repeated completion of
// the same element appends another record rather than overwriting the first.
func (s *ReaderService) CompleteInteractive(bookID, userID uint, elementID string, score int) error {
	if _, err := s.findBook(bookID); err != nil {
		return err
	}

	progress, err := s.ProgressRepo.FindOrCreate(nil, bookID, userID)
	if err != nil {
		return err
	}

	return s.ProgressRepo.AddCompletion(nil, &model.InteractiveCompletion{
		ProgressID:  progress.ID,
		ElementID:   elementID,
		Score:       score,
		CompletedAt: time.Now(),
	})
}

// SaveMood appends the mood to the book-side progress record and to the
// user-side log keyed by book, inside one transaction so the two mirrors
// cannot diverge on a partial failure. The mood label is stored verbatim.
func (s *ReaderService) SaveMood(bookID, userID uint, pageNumber int, mood string) error {
	if _, err := s.findBook(bookID); err != nil {
		return err
	}
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrUserNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		progress, err := s.ProgressRepo.FindOrCreate(tx, bookID, userID)
		if err != nil {
			return err
		}
		if err := s.ProgressRepo.AddMood(tx, &model.MoodEntry{
			ProgressID: progress.ID,
			PageNumber: pageNumber,
			Mood:       mood,
		}); err != nil {
			return err
		}

		bookMood, err := s.MoodRepo.FindOrCreate(tx, userID, bookID)
		if err != nil {
			return err
		}
		return s.MoodRepo.AddMood(tx, &model.UserMoodEntry{
			BookMoodID: bookMood.ID,
			Mood:       mood,
		})
	})
}

func (s *ReaderService) findBook(bookID uint) (*model.Book, error) {
	book, err := s.BookRepo.FindByID(bookID)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrBookNotFound
	} else if err != nil {
		return nil, err
	}
	return book, nil
}

func (s *ReaderService) completionSummary(book *model.Book, progress *model.ReadingProgress) (CompletionSummary, error) {
	elements := book.AllElements()
	summary := CompletionSummary{Total: len(elements)}

	if progress.ID == 0 || len(elements) == 0 {
		return summary, nil
	}

	completed, err := s.ProgressRepo.CompletedElementIDs(progress.ID)
	if err != nil {
		return summary, err
	}

	completedSet := make(map[string]bool, len(completed))
	for _, id := range completed {
		completedSet[id] = true
	}
	for _, el := range elements {
		if completedSet[el.ID] {
			summary.Completed++
		}
	}

	summary.AllCompleted = summary.Total > 0 && summary.Completed == summary.Total
	return summary, nil
}
