package controller

import (
	"errors"
	"strconv"

	"storynest_backend/internal/service"
	"storynest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReaderController struct {
	ReaderService *service.ReaderService
}

func NewReaderController(readerService *service.ReaderService) *ReaderController {
	return &ReaderController{ReaderService: readerService}
}

func (c *ReaderController) bookID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid book id")
		return 0, false
	}
	return uint(id), true
}

// ReadBook godoc
// @Summary Open a book for reading
// @Description Returns the book together with the caller's own progress and activity completion state
// @Tags reading
// @Produce  json
// @Param   id path int true "Book ID"
// @Success 200 {object} util.Response{data=service.ReadBookResult}
// @Failure 404 {object} util.Response "Book not found"
// @Router /api/books/{id}/read [get]
// @Security BearerAuth
func (c *ReaderController) ReadBook(ctx *gin.Context) {
	bookID, ok := c.bookID(ctx)
	if !ok {
		return
	}
	claims := util.GetUserFromContext(ctx)

	result, err := c.ReaderService.ReadBook(bookID, claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx, "Book not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// ProgressRequest defines the page-position update
// swagger:model ProgressRequest
type ProgressRequest struct {
	CurrentPage *int `json:"currentPage" binding:"required"`
}

// UpdateProgress godoc
// @Summary Record the current page
// @Description Upserts the caller's page position for the book; last write wins
// @Tags reading
// @Accept  json
// @Produce  json
// @Param   id path int true "Book ID"
// @Param   body body ProgressRequest true "Page position"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Book not found"
// @Router /api/books/{id}/progress [post]
// @Security BearerAuth
func (c *ReaderController) UpdateProgress(ctx *gin.Context) {
	bookID, ok := c.bookID(ctx)
	if !ok {
		return
	}

	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.ReaderService.UpdateProgress(bookID, claims.UserID, *req.CurrentPage); err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx, "Book not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"currentPage": *req.CurrentPage})
}

// BookmarkRequest defines a new bookmark
// swagger:model BookmarkRequest
type BookmarkRequest struct {
	Page *int   `json:"page" binding:"required"`
	Note string `json:"note"`
}

// AddBookmark godoc
// @Summary Add a bookmark
// @Description Appends a bookmark to the caller's progress for the book
// @Tags reading
// @Accept  json
// @Produce  json
// @Param   id path int true "Book ID"
// @Param   body body BookmarkRequest true "Bookmark"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Book not found"
// @Router /api/books/{id}/bookmark [post]
// @Security BearerAuth
func (c *ReaderController) AddBookmark(ctx *gin.Context) {
	bookID, ok := c.bookID(ctx)
	if !ok {
		return
	}

	var req BookmarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.ReaderService.AddBookmark(bookID, claims.UserID, *req.Page, req.Note); err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx, "Book not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"page": *req.Page})
}

// CompletionRequest defines a finished interactive element
// swagger:model CompletionRequest
type CompletionRequest struct {
	ElementID string `json:"elementId" binding:"required"`
	Score     int    `json:"score"`
}

// CompleteInteractive godoc
// @Summary Record an interactive completion
// @Description Appends a completion record for an element of the book
// @Tags reading
// @Accept  json
// @Produce  json
// @Param   id path int true "Book ID"
// @Param   body body CompletionRequest true "Completion"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Book not found"
// @Router /api/books/{id}/interactive [post]
// @Security BearerAuth
func (c *ReaderController) CompleteInteractive(ctx *gin.Context) {
	bookID, ok := c.bookID(ctx)
	if !ok {
		return
	}

	var req CompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.ReaderService.CompleteInteractive(bookID, claims.UserID, req.ElementID, req.Score); err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx, "Book not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"elementId": req.ElementID})
}

// MoodRequest defines a mood report for a page
// swagger:model MoodRequest
type MoodRequest struct {
	PageNumber *int   `json:"pageNumber" binding:"required"`
	Mood       string `json:"mood" binding:"required"`
}

// SaveMood godoc
// @Summary Record a reading mood
// @Description Appends the mood to the book progress and to the caller's per-book mood log
// @Tags reading
// @Accept  json
// @Produce  json
// @Param   id path int true "Book ID"
// @Param   body body MoodRequest true "Mood"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Book or user not found"
// @Router /api/books/{id}/mood [post]
// @Security BearerAuth
func (c *ReaderController) SaveMood(ctx *gin.Context) {
	bookID, ok := c.bookID(ctx)
	if !ok {
		return
	}

	var req MoodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	err := c.ReaderService.SaveMood(bookID, claims.UserID, *req.PageNumber, req.Mood)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrBookNotFound):
			util.NotFound(ctx, "Book not found")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"mood": req.Mood})
}
