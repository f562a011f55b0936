package controller

import (
	"errors"
	"net/http"
	"strconv"

	"storynest_backend/internal/service"
	"storynest_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags users
// @Produce  json
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "User not found"
// @Router /api/users/profile [get]
// @Security BearerAuth
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	user, err := c.UserService.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// ProfileUpdateRequest defines the profile edit payload
// swagger:model ProfileUpdateRequest
type ProfileUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Changes username and/or email; omitted fields are kept
// @Tags users
// @Accept  json
// @Produce  json
// @Param   body body ProfileUpdateRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/users/profile [put]
// @Security BearerAuth
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	var req ProfileUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	user, err := c.UserService.UpdateProfile(claims.UserID, service.ProfileUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrEmailRegistered):
			util.Error(ctx, http.StatusConflict, "Email is already registered")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// GetMoods godoc
// @Summary Get own mood logs
// @Description Returns the caller's recorded moods grouped by book
// @Tags users
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.BookMood}
// @Router /api/users/moods [get]
// @Security BearerAuth
func (c *UserController) GetMoods(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	moods, err := c.UserService.GetMoods(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, moods)
}

// ListUsers godoc
// @Summary List all users
// @Tags admin
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users [get]
// @Security BearerAuth
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, users)
}

// GetUser godoc
// @Summary Get one user
// @Tags admin
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response "User not found"
// @Router /api/users/{id} [get]
// @Security BearerAuth
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid user id")
		return
	}

	user, err := c.UserService.GetUserByID(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// AdminUpdateRequest defines the administrative user edit payload
// swagger:model AdminUpdateRequest
type AdminUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Role     *string `json:"role"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// UpdateUser godoc
// @Summary Update a user
// @Description Changes account fields including role; the password is re-hashed when provided
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   id path int true "User ID"
// @Param   body body AdminUpdateRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 404 {object} util.Response "User not found"
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/users/{id} [put]
// @Security BearerAuth
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid user id")
		return
	}

	var req AdminUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateUser(uint(id), service.AdminUpdate{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, "User not found")
		case errors.Is(err, util.ErrInvalidRole):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrEmailRegistered):
			util.Error(ctx, http.StatusConflict, "Email is already registered")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, user)
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags admin
// @Produce  json
// @Param   id path int true "User ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "User not found"
// @Router /api/users/{id} [delete]
// @Security BearerAuth
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "Invalid user id")
		return
	}

	if err := c.UserService.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, "User not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"deleted": id})
}
