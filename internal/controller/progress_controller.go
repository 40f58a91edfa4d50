package controller

import (
	"lexilearn_backend/internal/model"
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
	Reports         *service.ReportService
	ModuleService   *service.ModuleService
	QuizService     *service.QuizService
}

func NewProgressController(
	progressService *service.ProgressService,
	reports *service.ReportService,
	moduleService *service.ModuleService,
	quizService *service.QuizService,
) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
		Reports:         reports,
		ModuleService:   moduleService,
		QuizService:     quizService,
	}
}

type recordProgressRequest struct {
	ModuleID       *uint                 `json:"moduleId"`
	QuizID         *uint                 `json:"quizId"`
	CurrentStep    int                   `json:"currentStep" binding:"min=0"`
	Score          *int                  `json:"score" binding:"omitempty,min=0,max=100"`
	TimeSpent      *int                  `json:"timeSpent" binding:"omitempty,min=0"`
	ExerciseResult *model.ExerciseResult `json:"exerciseResult"`
	Paused         bool                  `json:"paused"`
	Reset          bool                  `json:"reset"`
}

// Record upserts the caller's progress row for one module or quiz. Students
// only; a teacher cannot write progress on a student's behalf.
func (c *ProgressController) Record(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req recordProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if (req.ModuleID == nil) == (req.QuizID == nil) {
		util.BadRequest(ctx, "exactly one of moduleId and quizId is required")
		return
	}

	upd := service.ProgressUpdate{
		CurrentStep:    req.CurrentStep,
		Score:          req.Score,
		TimeSpent:      req.TimeSpent,
		ExerciseResult: req.ExerciseResult,
		Paused:         req.Paused,
		Reset:          req.Reset,
	}
	view, err := c.ProgressService.RecordProgress(ctx.Request.Context(), claims.UserID, req.ModuleID, req.QuizID, upd)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// List returns progress rows for a student. Teachers and admins pass
// studentId; students always get their own.
func (c *ProgressController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	studentID := claims.UserID
	if raw := ctx.Query("studentId"); raw != "" {
		parsed, ok := parseUintQuery(ctx, "studentId", raw)
		if !ok {
			return
		}
		studentID = parsed
	}

	views, err := c.ProgressService.ListForStudent(claims, studentID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// Update applies a progress update to an existing row by id. Owning student
// only.
func (c *ProgressController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req recordProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	upd := service.ProgressUpdate{
		CurrentStep:    req.CurrentStep,
		Score:          req.Score,
		TimeSpent:      req.TimeSpent,
		ExerciseResult: req.ExerciseResult,
		Paused:         req.Paused,
		Reset:          req.Reset,
	}
	view, err := c.ProgressService.UpdateProgress(ctx.Request.Context(), claims, id, upd)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

func (c *ProgressController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	view, err := c.ProgressService.GetProgress(claims, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// StudentSummary aggregates one student's progress across all content.
func (c *ProgressController) StudentSummary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	studentID := claims.UserID
	if raw := ctx.Query("studentId"); raw != "" {
		parsed, ok := parseUintQuery(ctx, "studentId", raw)
		if !ok {
			return
		}
		studentID = parsed
	}
	if err := c.ProgressService.AuthorizeStudentAccess(claims, studentID); err != nil {
		respondServiceError(ctx, err)
		return
	}

	summary, err := c.Reports.StudentSummary(ctx.Request.Context(), studentID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// ModuleSummary aggregates all students' progress on one module. Only the
// owning teacher (or an admin) may see it.
func (c *ProgressController) ModuleSummary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if _, err := c.ModuleService.Get(claims, id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	summary, err := c.Reports.ModuleSummary(ctx.Request.Context(), id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// QuizSummary aggregates all students' progress on one quiz, gated on
// ownership the same way as ModuleSummary.
func (c *ProgressController) QuizSummary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if _, err := c.QuizService.Get(claims, id); err != nil {
		respondServiceError(ctx, err)
		return
	}

	summary, err := c.Reports.QuizSummary(ctx.Request.Context(), id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// RosterSummary aggregates progress over the calling teacher's roster.
func (c *ProgressController) RosterSummary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	teacherID := claims.UserID
	if claims.Role == model.Admin {
		if raw := ctx.Query("teacherId"); raw != "" {
			parsed, ok := parseUintQuery(ctx, "teacherId", raw)
			if !ok {
				return
			}
			teacherID = parsed
		}
	}

	summary, err := c.Reports.RosterSummary(ctx.Request.Context(), teacherID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}
