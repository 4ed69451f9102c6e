package controllers

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/christophe77/NovaBlog/internal/models"
	"github.com/christophe77/NovaBlog/internal/repository"
	"github.com/christophe77/NovaBlog/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenValidity = time.Hour

type AuthController struct {
	userRepo  repository.UserRepository
	resetRepo repository.ResetPasswordRepository
}

func NewAuthController(userRepo repository.UserRepository, resetRepo repository.ResetPasswordRepository) *AuthController {
	return &AuthController{userRepo: userRepo, resetRepo: resetRepo}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Authenticate an admin user
// @Description Verify credentials and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /api/auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user, err := ac.userRepo.FindByEmail(req.Email)
	if err != nil || !user.IsActive {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid credentials",
			"error":   "Email or password is incorrect",
		})
		return
	}

	if err := ac.userRepo.UpdateLastLogin(user.ID, time.Now()); err != nil {
		log.Printf("Failed to update last login for user %d: %v", user.ID, err)
	}

	token, err := generateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data": gin.H{
			"token": token,
			"user": gin.H{
				"id":    user.ID,
				"email": user.Email,
				"role":  user.Role,
			},
		},
	})
}

// Logout godoc
// @Summary Log out
// @Description Bearer tokens are stateless; the client discards the token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Logout successful"
// @Router /api/auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Logout successful",
		"data":    nil,
	})
}

// Me godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /api/auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	user, err := ac.userRepo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User retrieved successfully",
		"data": gin.H{
			"id":          user.ID,
			"email":       user.Email,
			"role":        user.Role,
			"lastLoginAt": user.LastLoginAt,
			"createdAt":   user.CreatedAt,
		},
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Always responds with success so account existence is not revealed
// @Tags auth
// @Accept json
// @Produce json
// @Param request body forgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{} "Reset link sent if the email exists"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /api/auth/forgot-password [post]
func (ac *AuthController) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	response := gin.H{
		"status":  "success",
		"message": "If the email exists, a reset link has been sent.",
		"data":    nil,
	}

	user, err := ac.userRepo.FindByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusOK, response)
		return
	}

	reset := &models.ResetPassword{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(resetTokenValidity),
	}
	if err := ac.resetRepo.Create(reset); err != nil {
		log.Printf("Failed to create reset token for user %d: %v", user.ID, err)
		c.JSON(http.StatusOK, response)
		return
	}

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("Password reset token for %s: %s", user.Email, reset.Token)
	}

	mailConfig := utils.LoadMailConfig()
	if mailConfig.SMTPHost != "" {
		resetURL := os.Getenv("APP_BASE_URL") + "/admin/reset-password?token=" + reset.Token
		body := "A password reset was requested for your account.\n\n" +
			"Open the following link to choose a new password (valid for 1 hour):\n" + resetURL
		if err := utils.SendEmail(mailConfig, user.Email, "Password reset", body); err != nil {
			log.Printf("Failed to send reset email: %v", err)
		}
	}

	c.JSON(http.StatusOK, response)
}

type resetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ResetPassword godoc
// @Summary Reset a password with a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body resetPasswordRequest true "Reset token and new password"
// @Success 200 {object} map[string]interface{} "Password reset successfully"
// @Failure 400 {object} map[string]interface{} "Invalid or expired token"
// @Router /api/auth/reset-password [post]
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	reset, err := ac.resetRepo.FindByToken(req.Token)
	if err != nil || reset.Used || reset.ExpiresAt.Before(time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid or expired token",
			"error":   "The reset token is invalid, already used or expired",
		})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to hash password",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.userRepo.UpdatePassword(reset.UserID, string(hash)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update password",
			"error":   err.Error(),
		})
		return
	}

	if err := ac.resetRepo.MarkUsed(reset.ID); err != nil {
		log.Printf("Failed to mark reset token as used: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Password reset successfully",
		"data":    nil,
	})
}

func generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET_KEY")))
}
