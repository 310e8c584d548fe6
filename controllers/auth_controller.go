package controllers

import (
	"log"
	"net/http"
	"strings"

	"hostel-backend/middleware"
	"hostel-backend/services"

	"github.com/gin-gonic/gin"
)

type registerPayload struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

func (ctrl *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "fullName, email and password are required", "details": err.Error()}})
		return
	}

	user, err := ctrl.AuthSvc.Register(payload.FullName, payload.Email, payload.Password)
	if err != nil {
		if strings.Contains(err.Error(), "email_taken") {
			c.JSON(http.StatusConflict, gin.H{"error": gin.H{"code": "error.emailTaken", "message": "An account with this email already exists."}})
			return
		}
		log.Printf("Register error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Failed to create account"}})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": user.Public()})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"code": "error.invalidPayload", "message": "email and password are required"}})
		return
	}

	user, token, err := ctrl.AuthSvc.Login(payload.Email, payload.Password)
	if err != nil {
		if strings.Contains(err.Error(), "invalid_credentials") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "error.invalidCredentials", "message": "Invalid email or password."}})
			return
		}
		log.Printf("Login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Login failed"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data": gin.H{
			"token": token,
			"user":  user.Public(),
		},
	})
}

func (ctrl *AuthController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": "error.unauthenticated", "message": "You must be logged in."}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": user.Public()})
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	token := header
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
		token = strings.TrimSpace(parts[1])
	}

	if err := ctrl.AuthSvc.Logout(token); err != nil {
		log.Printf("Logout error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"code": "error.internal", "message": "Logout failed"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
