package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-registration-api/internal/application/ports"
	"user-registration-api/internal/interface/api/rest/dto/auth"
	"user-registration-api/internal/interface/api/rest/dto/user"
	"user-registration-api/internal/interface/api/rest/middleware"
	"user-registration-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.Auth,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteLogin, ac.LoginHandler)
	r.GET(RouteAuthVerify, ac.VerifyTokenHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.authService.Login(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		respondError(c, ac.logger, "Login()", err)
		return
	}

	c.JSON(http.StatusOK, auth.LoginResponse{
		Message: "login successful",
		Token:   u.Token,
		User:    user.ToResponseUser(*u),
	})
}

// VerifyTokenHandler only runs behind the access gate; reaching it means
// the presented token already validated.
func (ac *AuthController) VerifyTokenHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "token is valid",
		"status":    "authenticated",
		"user_id":   c.GetString(middleware.CtxUserID),
		"email":     c.GetString(middleware.CtxUserEmail),
		"timestamp": time.Now().Unix(),
	})
}
