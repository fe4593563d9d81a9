package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shorturl-be/internal/jwt"
	"shorturl-be/internal/middleware"
	"shorturl-be/internal/models"
	"shorturl-be/internal/service"
)

type AuthController struct {
	authService  service.AuthService
	cookieSecure bool
}

func NewAuthController(authService service.AuthService, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieSecure: cookieSecure,
	}
}

// Register handles POST /auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	userID, err := ac.authService.Register(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.RegisterResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

// Login handles POST /auth/login. The token is returned in the body and set as an HTTP-only cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	token, identity, err := ac.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, token, int(jwt.TokenTTL.Seconds()), "/", "", ac.cookieSecure, true)

	c.JSON(http.StatusOK, models.LoginResponse{
		Message: "Logged in successfully",
		Token:   token,
		User:    *identity,
	})
}

// Logout handles POST /auth/logout. It only clears the cookie; an already issued
// token stays valid until it expires.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, "", -1, "/", "", ac.cookieSecure, true)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}
