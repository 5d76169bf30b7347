package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sathish19189/Ecommerce-project/middleware"
	"github.com/sathish19189/Ecommerce-project/models"
	"github.com/sathish19189/Ecommerce-project/store"
)

// Auth handles signup, login and logout.
type Auth struct {
	credentials *store.Credentials
	sessions    *store.Sessions
	log         *logrus.Logger
}

func NewAuth(credentials *store.Credentials, sessions *store.Sessions, log *logrus.Logger) *Auth {
	return &Auth{credentials: credentials, sessions: sessions, log: log}
}

// Register creates a new user account
func (h *Auth) Register(c *gin.Context) {
	var input models.UserRegister

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		return
	}

	if err := h.credentials.Register(input.Username, input.Email, input.Password); err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	h.log.WithField("username", input.Username).Info("user registered")
	c.JSON(http.StatusCreated, gin.H{"message": "account created, please login"})
}

// Login authenticates a user and attaches the identity to the session
func (h *Auth) Login(c *gin.Context) {
	var input models.UserLogin

	// Parse request body
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.credentials.Verify(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session not found"})
		return
	}
	if err := h.sessions.Login(sess.ID, user.Username, user.IsAdmin); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	h.log.WithField("username", user.Username).Info("login successful")
	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
			"is_admin": user.IsAdmin,
		},
	})
}

// Logout drops the session entirely, resetting identity and cart together
func (h *Auth) Logout(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		h.sessions.Delete(sess.ID)
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}
