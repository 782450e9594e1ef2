package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/passtrack/passboard/internal/domain/errors"
	"github.com/passtrack/passboard/internal/server/http/dto"
	"github.com/passtrack/passboard/internal/server/http/middleware"
)

// AuthHandler processes operator login and logout.
type AuthHandler struct {
	facade       AuthFacade
	cookieMaxAge int
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{facade: facade, cookieMaxAge: cookieMaxAge}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.LoginResponse{Success: false, Message: "invalid request"})
		return
	}

	token, err := h.facade.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.LoginResponse{Success: false, Message: "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.LoginResponse{Success: false, Message: "An error occurred"})
		return
	}

	middleware.SetSessionCookie(c, token, h.cookieMaxAge)
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, dto.LoginResponse{Success: true})
}
