package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storynest_backend/internal/model"
	"storynest_backend/internal/repository"
	"storynest_backend/internal/util"
	"storynest_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	bookCacheKeyPrefix = "book:"
	bookCacheTTL       = 5 * time.Minute
)

// CatalogFilter is the set of independently optional, conjunctive filters
// for the book listing.
type CatalogFilter struct {
	Age          int
	Genres       []string
	ReadingLevel string
	Search       string
}

type CatalogService struct {
	BookRepo *repository.BookRepository
	Redis    *redis.Client
}

func NewCatalogService(bookRepo *repository.BookRepository, rdb *redis.Client) *CatalogService {
	return &CatalogService{
		BookRepo: bookRepo,
		Redis:    rdb,
	}
}

// ListBooks returns the full filtered result set ordered newest first. Age,
// reading level and search are pushed into SQL; genre-set intersection runs
// over the JSON genre column after the fetch.
func (s *CatalogService) ListBooks(filter CatalogFilter) ([]model.Book, error) {
	books, err := s.BookRepo.List(repository.BookFilter{
		Age:          filter.Age,
		ReadingLevel: filter.ReadingLevel,
		Search:       filter.Search,
	})
	if err != nil {
		return nil, err
	}

	if len(filter.Genres) == 0 {
		return books, nil
	}

	matched := make([]model.Book, 0, len(books))
	for _, b := range books {
		if b.Genres.Intersects(filter.Genres) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}

func (s *CatalogService) GetBook(id uint) (*model.Book, error) {
	if s.Redis != nil {
		key := fmt.Sprintf("%s%d", bookCacheKeyPrefix, id)
		val, err := s.Redis.Get(context.Background(), key).Result()
		if err == nil {
			var cached model.Book
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	book, err := s.BookRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrBookNotFound
	} else if err != nil {
		return nil, err
	}

	s.cacheBook(book)
	return book, nil
}

func (s *CatalogService) CreateBook(book *model.Book) error {
	if err := validateBook(book); err != nil {
		return err
	}

	for i := range book.Pages {
		book.Pages[i].Position = i
		for j := range book.Pages[i].Elements {
			book.Pages[i].Elements[j].Position = j
		}
	}

	return s.BookRepo.Create(book)
}

// BookUpdate carries the optional fields of a partial catalog update. Nil
// pointers leave the stored value untouched.
type BookUpdate struct {
	Title        *string
	Author       *string
	Description  *string
	CoverImage   *string
	Content      *string
	AgeMin       *int
	AgeMax       *int
	Genres       *model.StringList
	ReadingLevel *string
	Pages        []model.Page
}

func (s *CatalogService) UpdateBook(id uint, update BookUpdate) (*model.Book, error) {
	book, err := s.BookRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, util.ErrBookNotFound
	} else if err != nil {
		return nil, err
	}

	if update.Title != nil {
		book.Title = *update.Title
	}
	if update.Author != nil {
		book.Author = *update.Author
	}
	if update.Description != nil {
		book.Description = *update.Description
	}
	if update.CoverImage != nil {
		book.CoverImage = *update.CoverImage
	}
	if update.Content != nil {
		book.Content = *update.Content
	}
	if update.AgeMin != nil {
		book.AgeMin = *update.AgeMin
	}
	if update.AgeMax != nil {
		book.AgeMax = *update.AgeMax
	}
	if update.Genres != nil {
		book.Genres = *update.Genres
	}
	if update.ReadingLevel != nil {
		book.ReadingLevel = model.ReadingLevel(*update.ReadingLevel)
	}

	if err := validateBook(book); err != nil {
		return nil, err
	}

	book.UpdatedAt = time.Now()

	err = s.BookRepo.DB.Transaction(func(tx *gorm.DB) error {
		if update.Pages != nil {
			var oldPages []model.Page
			if err := tx.Where("book_id = ?", book.ID).Find(&oldPages).Error; err != nil {
				return err
			}
			for _, p := range oldPages {
				if err := tx.Where("page_id = ?", p.ID).Delete(&model.InteractiveElement{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("book_id = ?", book.ID).Delete(&model.Page{}).Error; err != nil {
				return err
			}
			for i := range update.Pages {
				update.Pages[i].BookID = book.ID
				update.Pages[i].Position = i
				for j := range update.Pages[i].Elements {
					update.Pages[i].Elements[j].Position = j
				}
			}
			if len(update.Pages) > 0 {
				if err := tx.Create(&update.Pages).Error; err != nil {
					return err
				}
			}
			book.Pages = update.Pages
		}
		return tx.Omit("Pages").Save(book).Error
	})
	if err != nil {
		return nil, err
	}

	s.invalidateBook(book.ID)
	return book, nil
}

func (s *CatalogService) DeleteBook(id uint) error {
	book, err := s.BookRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return util.ErrBookNotFound
	} else if err != nil {
		return err
	}

	if err := s.BookRepo.Delete(book); err != nil {
		return err
	}

	s.invalidateBook(id)
	return nil
}

func validateBook(book *model.Book) error {
	if book.AgeMin < model.MinReaderAge || book.AgeMax > model.MaxReaderAge || book.AgeMin > book.AgeMax {
		return util.ErrInvalidAgeRange
	}
	if !model.ValidReadingLevel(string(book.ReadingLevel)) {
		return util.ErrInvalidReadingLvl
	}
	return nil
}

func (s *CatalogService) cacheBook(book *model.Book) {
	if s.Redis == nil {
		return
	}
	key := fmt.Sprintf("%s%d", bookCacheKeyPrefix, book.ID)
	val, err := json.Marshal(book)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), key, val, bookCacheTTL).Err(); err != nil {
		logger.Log.Warn("Failed to cache book", zap.Uint("bookId", book.ID), zap.Error(err))
	}
}

func (s *CatalogService) invalidateBook(id uint) {
	if s.Redis == nil {
		return
	}
	key := fmt.Sprintf("%s%d", bookCacheKeyPrefix, id)
	s.Redis.Del(context.Background(), key)
}
