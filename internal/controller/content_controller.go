package controller

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"storynest_backend/internal/service"
	"storynest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps a single asset upload at 20 MB.
const maxUploadSize = 20 << 20

type ContentController struct {
	StorageService *service.StorageService
}

func NewContentController(storageService *service.StorageService) *ContentController {
	return &ContentController{StorageService: storageService}
}

// UploadImage godoc
// @Summary Upload a cover or page image
// @Tags content
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Image file"
// @Success 200 {object} util.Response{data=object} "Stored URL"
// @Failure 400 {object} util.Response "Invalid file"
// @Router /api/admin/upload/image [post]
// @Security BearerAuth
func (c *ContentController) UploadImage(ctx *gin.Context) {
	c.upload(ctx, "images", []string{"image/"})
}

// UploadCover godoc
// @Summary Upload a book cover
// @Tags content
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Cover image"
// @Success 200 {object} util.Response{data=object} "Stored URL"
// @Failure 400 {object} util.Response "Invalid file"
// @Router /api/admin/upload/cover [post]
// @Security BearerAuth
func (c *ContentController) UploadCover(ctx *gin.Context) {
	c.upload(ctx, "covers", []string{"image/"})
}

// UploadAudio godoc
// @Summary Upload a narration audio file
// @Tags content
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "Audio file"
// @Success 200 {object} util.Response{data=object} "Stored URL"
// @Failure 400 {object} util.Response "Invalid file"
// @Router /api/admin/upload/audio [post]
// @Security BearerAuth
func (c *ContentController) UploadAudio(ctx *gin.Context) {
	c.upload(ctx, "audio", []string{"audio/", "video/mp4", "application/octet-stream"})
}

func (c *ContentController) upload(ctx *gin.Context, folder string, allowedTypes []string) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if fileHeader.Size > maxUploadSize {
		util.BadRequest(ctx, "file exceeds the 20MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	mimeType, err := util.ValidateMimeType(bytes.NewReader(data), allowedTypes)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ext := filepath.Ext(fileHeader.Filename)
	filename := fmt.Sprintf("%s/%d_%s%s", folder, time.Now().Unix(), util.GenerateRandomString(8), ext)

	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, bytes.NewReader(data), int64(len(data)), mimeType)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"url":      url,
		"mimeType": mimeType,
	})
}
