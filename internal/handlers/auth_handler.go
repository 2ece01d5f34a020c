package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"authgate/internal/models"
	"authgate/internal/services"
)

type AuthHandler struct {
	userService  services.UserService
	authService  services.AuthService
	tokenService services.TokenService
	resetService services.PasswordResetService
}

func NewAuthHandler(
	userService services.UserService,
	authService services.AuthService,
	tokenService services.TokenService,
	resetService services.PasswordResetService,
) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		authService:  authService,
		tokenService: tokenService,
		resetService: resetService,
	}
}

// @Summary      Register a new user
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        register  body      models.RegisterRequest  true  "Registration data"
// @Success      201       {object}  map[string]interface{}
// @Failure      400       {object}  map[string]string
// @Failure      500       {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.userService.Register(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDuplicateUser):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		case errors.Is(err, services.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			log.Printf("[auth][register] failed for email=%q: %v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Registration failed"})
		}
		return
	}

	token, err := h.tokenService.Issue(user.ID)
	if err != nil {
		log.Printf("[auth][register] sign token failed for userID=%d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	log.Printf("[auth][register] success userID=%d", user.ID)
	c.JSON(http.StatusCreated, gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"token":   token,
		"message": "Registration successful",
	})
}

// @Summary      Log in
// @Description  Authenticates a user and returns a session token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Login data"
// @Success      200    {object}  map[string]interface{}
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	email := strings.TrimSpace(req.Email)

	user, err := h.userService.GetUserByEmail(email)
	if err != nil {
		log.Printf("[auth][login] lookup failed for email=%q: %v", email, err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials (Email or Password)"})
		return
	}
	// same answer for unknown email and wrong password
	if user == nil || !h.authService.VerifyPassword(req.Password, user.PasswordHash) {
		log.Printf("[auth][login] rejected email=%q", email)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials (Email or Password)"})
		return
	}

	token, err := h.tokenService.Issue(user.ID)
	if err != nil {
		log.Printf("[auth][login] sign token failed for userID=%d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	log.Printf("[auth][login] success userID=%d", user.ID)
	c.JSON(http.StatusOK, gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"token":   token,
		"message": "Login successful",
	})
}

// @Summary      Request a password reset email
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        forgot  body      models.ForgotPasswordRequest  true  "Account email"
// @Success      200     {object}  map[string]string
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.resetService.RequestReset(req.Email); err != nil {
		if errors.Is(err, services.ErrDispatchFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Email could not be sent. Server error."})
			return
		}
		log.Printf("[auth][forgot] failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// identical body whether or not the account exists
	c.JSON(http.StatusOK, gin.H{"message": "If a user exists with this email, a reset link has been sent."})
}

// @Summary      Reset password with an emailed token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        token  path      string                       true  "Plain reset token"
// @Param        reset  body      models.ResetPasswordRequest  true  "New password"
// @Success      200    {object}  map[string]string
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /reset-password/{token} [put]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	sessionToken, err := h.resetService.ResetPassword(c.Param("token"), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidOrExpiredToken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired reset token."})
		case errors.Is(err, services.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			log.Printf("[auth][reset] failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	resp := gin.H{"message": "Password successfully reset. You can now log in."}
	if sessionToken != "" {
		resp["token"] = sessionToken
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Current user profile
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := getIntFromCtx(c, "user_id")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	user, err := h.userService.GetUserByID(userID)
	if err != nil || user == nil {
		log.Printf("[auth][me] lookup failed for userID=%d: %v", userID, err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}
