package controller

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"storynest_backend/internal/model"
	"storynest_backend/internal/service"
	"storynest_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type BookController struct {
	CatalogService *service.CatalogService
}

func NewBookController(catalogService *service.CatalogService) *BookController {
	return &BookController{CatalogService: catalogService}
}

// ElementRequest is one interactive element of a page
// swagger:model ElementRequest
type ElementRequest struct {
	Kind    string          `json:"type" binding:"required"`
	Content json.RawMessage `json:"content" binding:"required"`
}

// PageRequest is one page of a book
// swagger:model PageRequest
type PageRequest struct {
	Content  string           `json:"content"`
	ImageURL string           `json:"imageUrl"`
	AudioURL string           `json:"audioUrl"`
	Elements []ElementRequest `json:"interactiveElements"`
}

// BookRequest defines the create-book payload
// swagger:model BookRequest
type BookRequest struct {
	Title        string        `json:"title" binding:"required"`
	Author       string        `json:"author" binding:"required"`
	Description  string        `json:"description"`
	CoverImage   string        `json:"coverImage"`
	Content      string        `json:"content"`
	AgeMin       int           `json:"ageMin" binding:"required"`
	AgeMax       int           `json:"ageMax" binding:"required"`
	Genres       []string      `json:"genre"`
	ReadingLevel string        `json:"readingLevel" binding:"required"`
	Pages        []PageRequest `json:"pages"`
}

func buildPages(reqs []PageRequest) ([]model.Page, error) {
	pages := make([]model.Page, 0, len(reqs))
	for _, pr := range reqs {
		page := model.Page{
			Content:  pr.Content,
			ImageURL: pr.ImageURL,
			AudioURL: pr.AudioURL,
		}
		for _, er := range pr.Elements {
			if !model.ValidElementKind(er.Kind) {
				return nil, errors.New("unknown interactive element type: " + er.Kind)
			}
			page.Elements = append(page.Elements, model.InteractiveElement{
				Kind:    model.ElementKind(er.Kind),
				Content: datatypes.JSON(er.Content),
			})
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// ListBooks godoc
// @Summary List books
// @Description Returns the catalog filtered by age, genre, reading level and search text
// @Tags books
// @Produce  json
// @Param   ageRange query int false "Reader age the book's range must contain"
// @Param   genre query string false "Comma-separated genres, any match"
// @Param   readingLevel query string false "Beginner, Intermediate or Advanced"
// @Param   search query string false "Case-insensitive match on title, author or description"
// @Success 200 {object} util.Response{data=[]model.Book}
// @Router /api/books [get]
func (c *BookController) ListBooks(ctx *gin.Context) {
	var filter service.CatalogFilter

	if raw := ctx.Query("ageRange"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil {
			util.BadRequest(ctx, "ageRange must be a number")
			return
		}
		filter.Age = age
	}
	if raw := ctx.Query("genre"); raw != "" {
		for _, g := range strings.Split(raw, ",") {
			if g = strings.TrimSpace(g); g != "" {
				filter.Genres = append(filter.Genres, g)
			}
		}
	}
	filter.ReadingLevel = ctx.Query("readingLevel")
	filter.Search = ctx.Query("search")

	books, err := c.CatalogService.ListBooks(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, books)
}

// GetBook godoc
// @Summary Get one book
// @Description Returns the book with its pages and interactive elements
// @Tags books
// @Produce  json
// @Param   id path int true "Book ID"
// @Success 200 {object} util.Response{data=model.Book}
// @Failure 404 {object} util.Response "Book not found"
// @Router /api/books/{id} [get]
func (c *BookController) GetBook(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid book id")
		return
	}

	book, err := c.CatalogService.GetBook(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx, "Book not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, book)
}

// CreateBook godoc
// @Summary Create a book
// @Description Adds a book with its pages to the catalog
// @Tags books
// @Accept  json
// @Produce  json
// @Param   body body BookRequest true "Book payload"
// @Success 201 {object} util.Response{data=model.Book}
// @Failure 400 {object} util.Response "Invalid payload"
// @Router /api/books [post]
// @Security BearerAuth
func (c *BookController) CreateBook(ctx *gin.Context) {
	var req BookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pages, err := buildPages(req.Pages)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	book := &model.Book{
		Title:        req.Title,
		Author:       req.Author,
		Description:  req.Description,
		CoverImage:   req.CoverImage,
		Content:      req.Content,
		AgeMin:       req.AgeMin,
		AgeMax:       req.AgeMax,
		Genres:       model.StringList(req.Genres),
		ReadingLevel: model.ReadingLevel(req.ReadingLevel),
		Pages:        pages,
	}

	if err := c.CatalogService.CreateBook(book); err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidAgeRange), errors.Is(err, util.ErrInvalidReadingLvl):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, book)
}

// BookUpdateRequest defines the partial update payload
// swagger:model BookUpdateRequest
type BookUpdateRequest struct {
	Title        *string       `json:"title"`
	Author       *string       `json:"author"`
	Description  *string       `json:"description"`
	CoverImage   *string       `json:"coverImage"`
	Content      *string       `json:"content"`
	AgeMin       *int          `json:"ageMin"`
	AgeMax       *int          `json:"ageMax"`
	Genres       *[]string     `json:"genre"`
	ReadingLevel *string       `json:"readingLevel"`
	Pages        []PageRequest `json:"pages"`
}

// UpdateBook godoc
// @Summary Update a book
// @Description Applies a partial update; omitted fields keep their stored values
// @Tags books
// @Accept  json
// @Produce  json
// @Param   id path int true "Book ID"
// @Param   body body BookUpdateRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.Book}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "Book not found"
// @Router /api/books/{id} [put]
// @Security BearerAuth
func (c *BookController) UpdateBook(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid book id")
		return
	}

	var req BookUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	update := service.BookUpdate{
		Title:        req.Title,
		Author:       req.Author,
		Description:  req.Description,
		CoverImage:   req.CoverImage,
		Content:      req.Content,
		AgeMin:       req.AgeMin,
		AgeMax:       req.AgeMax,
		ReadingLevel: req.ReadingLevel,
	}
	if req.Genres != nil {
		genres := model.StringList(*req.Genres)
		update.Genres = &genres
	}
	if req.Pages != nil {
		pages, err := buildPages(req.Pages)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		update.Pages = pages
	}

	book, err := c.CatalogService.UpdateBook(uint(id), update)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrBookNotFound):
			util.NotFound(ctx, "Book not found")
		case errors.Is(err, util.ErrInvalidAgeRange), errors.Is(err, util.ErrInvalidReadingLvl):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, book)
}

// DeleteBook godoc
// @Summary Delete a book
// @Tags books
// @Produce  json
// @Param   id path int true "Book ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Book not found"
// @Router /api/books/{id} [delete]
// @Security BearerAuth
func (c *BookController) DeleteBook(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid book id")
		return
	}

	if err := c.CatalogService.DeleteBook(uint(id)); err != nil {
		if errors.Is(err, util.ErrBookNotFound) {
			util.NotFound(ctx, "Book not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
