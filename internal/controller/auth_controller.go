package controller

import (
	"errors"

	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	Cfg         *config.Config
}

func NewAuthController(authService *service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		Cfg:         cfg,
	}
}

// RegisterRequest only admits teacher self-registration. Admin accounts are
// provisioned out of band (seeding or direct DB access), never through the
// public endpoint, since an admin bypasses every ownership check.
type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=teacher"`
	School     string `json:"school"`
	GradeLevel string `json:"gradeLevel"`
	Subject    string `json:"subject"`
}

func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:       req.Name,
		Email:      &req.Email,
		Role:       model.UserRole(req.Role),
		School:     req.School,
		GradeLevel: req.GradeLevel,
		Subject:    req.Subject,
		IsActive:   true,
	}

	if err := c.AuthService.Register(user, req.Password); err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered):
			util.Conflict(ctx, "email already registered")
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	token, err := util.GenerateJWT(user, c.Cfg.JWT.Secret, c.Cfg.JWT.ExpireTime)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"token": token, "user": user.ToProfile()})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredential) {
			util.Error(ctx, 401, "invalid credentials")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"token": token, "user": user.ToProfile()})
}

type StudentLoginRequest struct {
	SecretCode string `json:"secretCode" binding:"required,len=9"`
}

func (c *AuthController) StudentLogin(ctx *gin.Context) {
	var req StudentLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.LoginWithSecretCode(req.SecretCode)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredential) {
			util.Error(ctx, 401, "invalid credentials")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"token": token, "user": user.ToProfile()})
}

func (c *AuthController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.UserRepo.FindByID(claims.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, user.ToProfile())
}
