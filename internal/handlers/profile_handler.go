package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/airport-service/internal/access"
	"github.com/farellandr/airport-service/internal/auth"
	"github.com/farellandr/airport-service/internal/helpers"
	"github.com/farellandr/airport-service/internal/middleware"
	"github.com/farellandr/airport-service/internal/repository"
)

type UpdateProfileRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=5"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type PatchProfileRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=5"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

type ProfileHandler struct {
	users repository.UserRepository
}

func NewProfileHandler(users repository.UserRepository) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) Register(router *gin.RouterGroup) {
	me := router.Group("/me", middleware.Require(access.KindProfile))
	me.GET("", h.get)
	me.PUT("", h.update)
	me.PATCH("", h.patch)
}

func (h *ProfileHandler) get(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), middleware.GetPrincipal(c).UserID)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *ProfileHandler) update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	patch := PatchProfileRequest{
		Email:     &req.Email,
		Password:  &req.Password,
		FirstName: &req.FirstName,
		LastName:  &req.LastName,
	}
	h.apply(c, patch)
}

func (h *ProfileHandler) patch(c *gin.Context) {
	var req PatchProfileRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}
	h.apply(c, req)
}

func (h *ProfileHandler) apply(c *gin.Context, req PatchProfileRequest) {
	ctx := c.Request.Context()
	user, err := h.users.Get(ctx, middleware.GetPrincipal(c).UserID)
	if err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Password != nil {
		hashedPassword, err := auth.HashPassword(*req.Password)
		if err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
			return
		}
		user.Password = hashedPassword
	}

	if err := h.users.Update(ctx, user); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
