package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-registration-api/internal/application/ports"
	"user-registration-api/internal/interface/api/rest/dto/user"
	"user-registration-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.POST(RouteRegistration, uc.RegisterHandler)
	r.GET(RouteUserByEmail, uc.GetUserByEmailHandler)
	r.PATCH(RouteUserLogin, uc.TouchLastLoginHandler)

	return uc
}

func (uc *UserController) RegisterHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}
	if errs := validator.ValidateRegistration(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := uc.userService.RegisterUser(c.Request.Context(), user.ToDomainUser(req), req.Password)
	if err != nil {
		respondError(c, uc.logger, "RegisterUser()", err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) GetUserByEmailHandler(c *gin.Context) {
	email := c.Param("email")
	if email == "" {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "email is required"},
		)
		return
	}

	u, err := uc.userService.FindByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, uc.logger, "FindByEmail()", err)
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) TouchLastLoginHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id must be a valid UUID"},
		)
		return
	}

	u, err := uc.userService.TouchLastLogin(c.Request.Context(), id)
	if err != nil {
		respondError(c, uc.logger, "TouchLastLogin()", err)
		return
	}

	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}
