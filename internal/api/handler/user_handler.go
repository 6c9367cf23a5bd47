package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barisbulutdemir/raporermak/internal/dto"
	"github.com/barisbulutdemir/raporermak/internal/service"
	pkgerrors "github.com/barisbulutdemir/raporermak/pkg/errors"
	"github.com/barisbulutdemir/raporermak/pkg/response"
)

// UserHandler serves profile and account administration endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler builds the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetProfile returns the caller's own profile.
// GET /api/v1/users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	profile, err := h.userSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, profile)
}

// UpdateProfile updates the caller's own settings.
// PATCH /api/v1/users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "geçersiz istek gövdesi")
		return
	}

	profile, err := h.userSvc.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, err.Error())
		case errors.Is(err, pkgerrors.ErrOptimisticLock):
			response.Conflict(c, 10006, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, profile)
}

// List returns all accounts, paginated. Admin only.
// GET /api/v1/users?page=1&page_size=20
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	users, total, err := h.userSvc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, users, total, page, pageSize)
}

// Approve marks a pending account as approved. Admin only.
// POST /api/v1/users/:id/approve
func (h *UserHandler) Approve(c *gin.Context) {
	approverID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Approve(c.Request.Context(), c.Param("id"), approverID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, 12001, err.Error())
		case errors.Is(err, pkgerrors.ErrOptimisticLock):
			response.Conflict(c, 10006, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}

// Delete soft-deletes an account. Admin only.
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12001, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
