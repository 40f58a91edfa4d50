package controller

import (
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	UserService     *service.UserService
	ProgressService *service.ProgressService
}

func NewStudentController(userService *service.UserService, progressService *service.ProgressService) *StudentController {
	return &StudentController{UserService: userService, ProgressService: progressService}
}

// Create registers a student under the calling teacher. The response carries
// the freshly minted secret code; this is the only time it is ever returned.
func (c *StudentController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, code, err := c.UserService.CreateStudent(claims.UserID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{
		"user":       student.ToProfile(),
		"secretCode": code,
	})
}

func (c *StudentController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	teacherID := claims.UserID
	if raw := ctx.Query("teacherId"); raw != "" {
		parsed, ok := parseUintQuery(ctx, "teacherId", raw)
		if !ok {
			return
		}
		teacherID = parsed
	}

	students, err := c.UserService.ListStudents(claims, teacherID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

func (c *StudentController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	student, err := c.UserService.GetStudent(claims, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, student.ToProfile())
}

func (c *StudentController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req service.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student, err := c.UserService.UpdateStudent(claims, id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, student.ToProfile())
}

func (c *StudentController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.UserService.DeleteStudent(claims, id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// RegenerateSecretCode replaces a student's login code, invalidating the
// old one immediately.
func (c *StudentController) RegenerateSecretCode(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	code, err := c.UserService.RegenerateSecretCode(claims, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"secretCode": code})
}

// Progress returns one student's full progress list, teacher or admin view.
func (c *StudentController) Progress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	views, err := c.ProgressService.ListForStudent(claims, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, views)
}
