package controller

import (
	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
	Storage           *service.StorageService
	Cfg               *config.Config
}

func NewAssignmentController(assignmentService *service.AssignmentService, storage *service.StorageService, cfg *config.Config) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService, Storage: storage, Cfg: cfg}
}

func (c *AssignmentController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.AssignmentService.Create(claims, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, a)
}

func (c *AssignmentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	assignments, err := c.AssignmentService.List(claims, contentQueryFromRequest(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

func (c *AssignmentController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	a, err := c.AssignmentService.Get(claims, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

func (c *AssignmentController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req service.AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	a, err := c.AssignmentService.Update(claims, id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, a)
}

func (c *AssignmentController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.AssignmentService.Delete(claims, id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// UploadMedia accepts multipart "photos"/"videos" fields for an assignment.
// Assignments carry the tighter per-file limit since they embed student work.
func (c *AssignmentController) UploadMedia(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	maxBytes := c.Cfg.Upload.AssignmentMaxMB << 20
	photos, err := saveUploadField(ctx, c.Storage, "photos", "assignments", maxBytes, []string{"image/"})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	videos, err := saveUploadField(ctx, c.Storage, "videos", "assignments", maxBytes, []string{"video/", "audio/"})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if len(photos)+len(videos) == 0 {
		util.BadRequest(ctx, "no files uploaded")
		return
	}

	var result interface{}
	for _, file := range photos {
		a, err := c.AssignmentService.AddMedia(claims, id, file, false)
		if err != nil {
			respondServiceError(ctx, err)
			return
		}
		result = a
	}
	for _, file := range videos {
		a, err := c.AssignmentService.AddMedia(claims, id, file, true)
		if err != nil {
			respondServiceError(ctx, err)
			return
		}
		result = a
	}
	util.Success(ctx, result)
}

type quizSubmitRequest struct {
	Answers   []service.QuizAnswer `json:"answers" binding:"required"`
	TimeSpent int                  `json:"timeSpent" binding:"omitempty,min=0"`
}

// SubmitQuiz grades a student's answers against the assignment's quiz
// questions and persists the attempt.
func (c *AssignmentController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req quizSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AssignmentService.SubmitQuiz(claims, id, req.Answers, req.TimeSpent)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// ListSubmissions returns a student's attempts on one assignment. Teachers
// pass studentId; students get their own.
func (c *AssignmentController) ListSubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	studentID := claims.UserID
	if raw := ctx.Query("studentId"); raw != "" {
		parsed, ok := parseUintQuery(ctx, "studentId", raw)
		if !ok {
			return
		}
		studentID = parsed
	}

	submissions, err := c.AssignmentService.ListSubmissions(claims, id, studentID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}
