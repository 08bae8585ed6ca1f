package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodorder/internal/apperr"
	"foodorder/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
	production  bool
}

func NewAuthHandler(authService services.AuthService, production bool) *AuthHandler {
	return &AuthHandler{authService: authService, production: production}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(c, apperr.New(apperr.Validation, "Email and password are required"), h.production)
		return
	}

	user, signed, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		writeError(c, err, h.production)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   signed,
		"user":    user,
	})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	user, signed, err := h.authService.Register(req.Name, req.Email, req.Password, req.Role, req.Location)
	if err != nil {
		writeError(c, err, h.production)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   signed,
		"user":    user,
	})
}
