package controller

import (
	"errors"
	"strconv"

	"lexilearn_backend/internal/config"
	"lexilearn_backend/internal/repository"
	"lexilearn_backend/internal/service"
	"lexilearn_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	ModuleService *service.ModuleService
	Storage       *service.StorageService
	Cfg           *config.Config
}

func NewModuleController(moduleService *service.ModuleService, storage *service.StorageService, cfg *config.Config) *ModuleController {
	return &ModuleController{ModuleService: moduleService, Storage: storage, Cfg: cfg}
}

func (c *ModuleController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	var req service.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.ModuleService.Create(claims, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, m)
}

func (c *ModuleController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)

	q := contentQueryFromRequest(ctx)
	modules, err := c.ModuleService.List(claims, q)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, modules)
}

func (c *ModuleController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	m, err := c.ModuleService.Get(claims, id)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

func (c *ModuleController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	var req service.ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	m, err := c.ModuleService.Update(claims, id, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, m)
}

func (c *ModuleController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	if err := c.ModuleService.Delete(claims, id); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// UploadMedia accepts multipart "photos"/"videos" fields for a module,
// capped at the configured module size limit.
func (c *ModuleController) UploadMedia(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	maxBytes := c.Cfg.Upload.ModuleMaxMB << 20
	photos, err := saveUploadField(ctx, c.Storage, "photos", "modules", maxBytes, []string{"image/"})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	videos, err := saveUploadField(ctx, c.Storage, "videos", "modules", maxBytes, []string{"video/", "audio/"})
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	media := append(photos, videos...)
	if len(media) == 0 {
		util.BadRequest(ctx, "no files uploaded")
		return
	}

	var result interface{}
	for _, file := range media {
		m, err := c.ModuleService.AddMedia(claims, id, file)
		if err != nil {
			respondServiceError(ctx, err)
			return
		}
		result = m
	}
	util.Success(ctx, result)
}

// idParam parses the :id path segment, answering 400 itself on garbage.
func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return 0, false
	}
	return uint(id), true
}

func parseUintQuery(ctx *gin.Context, name, raw string) (uint, bool) {
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid "+name)
		return 0, false
	}
	return uint(v), true
}

func contentQueryFromRequest(ctx *gin.Context) repository.ContentQuery {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))
	return repository.ContentQuery{
		Category:   ctx.Query("category"),
		Difficulty: ctx.Query("difficulty"),
		GradeLevel: ctx.Query("gradeLevel"),
		Status:     ctx.Query("status"),
		Page:       page,
		Limit:      limit,
	}
}

// respondServiceError maps service sentinels onto the HTTP taxonomy.
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrEmailRegistered):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrNotATeacher), errors.Is(err, util.ErrValidation):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
