package controller

import (
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

func (c *QuizController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Create(claims, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

func (c *QuizController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	quizzes, err := c.QuizService.List(claims, contentQueryFromRequest(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

func (c *QuizController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	quiz, err := c.QuizService.Get(claims, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

func (c *QuizController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req service.QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Update(claims, id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

func (c *QuizController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.QuizService.Delete(claims, id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}
