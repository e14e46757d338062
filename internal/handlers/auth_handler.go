package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/airport-service/internal/apperror"
	"github.com/farellandr/airport-service/internal/auth"
	"github.com/farellandr/airport-service/internal/helpers"
	"github.com/farellandr/airport-service/internal/models"
	"github.com/farellandr/airport-service/internal/repository"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=5"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

type VerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

type AuthHandler struct {
	users  repository.UserRepository
	issuer *auth.TokenIssuer
}

func NewAuthHandler(users repository.UserRepository, issuer *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, issuer: issuer}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/register", h.register)
	router.POST("/token", h.token)
	router.POST("/token/refresh", h.refresh)
	router.POST("/token/verify", h.verify)
}

func (h *AuthHandler) register(c *gin.Context) {
	var req RegisterRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	user := models.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(&user))
}

func (h *AuthHandler) token(c *gin.Context) {
	var req LoginRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindNotFound {
			helpers.RespondWithError(c, http.StatusUnauthorized, "No active account found with the given credentials.")
			return
		}
		helpers.RespondWithAppError(c, err)
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		helpers.RespondWithError(c, http.StatusUnauthorized, "No active account found with the given credentials.")
		return
	}

	pair, err := h.issuer.Issue(user)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusOK, pair)
}

func (h *AuthHandler) refresh(c *gin.Context) {
	var req RefreshRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	access, err := h.issuer.Refresh(req.Refresh)
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Token is invalid or expired.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": access})
}

func (h *AuthHandler) verify(c *gin.Context) {
	var req VerifyRequest
	if err := helpers.BindJSON(c, &req); err != nil {
		helpers.RespondWithAppError(c, err)
		return
	}

	if _, err := h.issuer.Parse(req.Token, ""); err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Token is invalid or expired.")
		return
	}

	c.JSON(http.StatusOK, gin.H{})
}
