package handlers

import (
	"net/http"

	"github.com/datafiscal/finanzas_backend/models"
	"github.com/datafiscal/finanzas_backend/utils"
	"github.com/gin-gonic/gin"
)

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type changePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// Register creates a user account. Duplicate emails come back as 400.
func Register(c *gin.Context) {
	var input models.NewUser
	if !bindJSON(c, &input) {
		return
	}

	user, err := models.RegisterUser(requestContext(c), &input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login checks credentials and issues an opaque session token. Bad
// credentials are a 401, not a 400.
func Login(c *gin.Context) {
	var input loginInput
	if !bindJSON(c, &input) {
		return
	}

	info, err := models.Login(requestContext(c), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}
	c.JSON(http.StatusOK, info)
}

func Logout(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}

	ok, err := models.Logout(requestContext(c))
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ApiToken issues a signed JWT for non-browser clients (export scripts,
// dashboard refresh jobs). The caller authenticates with a session token
// first; the JWT then goes into the Authorization header as a Bearer token.
func ApiToken(c *gin.Context) {
	userId, ok := requireUser(c)
	if !ok {
		return
	}

	token, err := utils.JwtGenerate(userId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me returns the authenticated user's profile.
func Me(c *gin.Context) {
	userId, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := models.GetUser(requestContext(c), userId)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func ChangePassword(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var input changePasswordInput
	if !bindJSON(c, &input) {
		return
	}

	user, err := models.ChangePassword(requestContext(c), input.OldPassword, input.NewPassword)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
