package controller

import (
	"errors"
	"strconv"

	"litgen_backend/internal/model"
	"litgen_backend/internal/service"
	"litgen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GenerationController struct {
	GenerationService *service.GenerationService
}

func NewGenerationController(generationService *service.GenerationService) *GenerationController {
	return &GenerationController{GenerationService: generationService}
}

// Generate godoc
// @Summary Generate a reading passage
// @Description Generates a standards-aligned passage with teacher notes and stores it
// @Tags generation
// @Accept  json
// @Produce  json
// @Param   body body model.GenerateTextRequest true "Generation parameters"
// @Success 200 {object} util.Response{data=model.GeneratedText}
// @Failure 400 {object} util.Response "No valid standards provided"
// @Router /api/generate [post]
func (c *GenerationController) Generate(ctx *gin.Context) {
	var req model.GenerateTextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var userID *uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = &claims.UserID
	}

	text, err := c.GenerationService.Generate(ctx.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, util.ErrNoValidStandards) {
			util.BadRequest(ctx, "No valid standards provided")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, text)
}

// ModifyPassage godoc
// @Summary Modify an existing passage
// @Description Reworks a passage per the instruction and regenerates teacher notes; nothing is persisted
// @Tags generation
// @Accept  json
// @Produce  json
// @Param   body body model.ModifyPassageRequest true "Modification parameters"
// @Success 200 {object} util.Response{data=service.ModifiedPassage}
// @Failure 400 {object} util.Response "No valid standards provided"
// @Router /api/modify-passage [post]
func (c *GenerationController) ModifyPassage(ctx *gin.Context) {
	var req model.ModifyPassageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.GenerationService.ModifyPassage(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, util.ErrNoValidStandards) {
			util.BadRequest(ctx, "No valid standards provided")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// GetText godoc
// @Summary Fetch a stored passage
// @Tags generation
// @Produce  json
// @Param   id path int true "Text ID"
// @Success 200 {object} util.Response{data=model.GeneratedText}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/texts/{id} [get]
func (c *GenerationController) GetText(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid text id")
		return
	}

	var requesterID *uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		requesterID = &claims.UserID
	}

	text, err := c.GenerationService.GetText(uint(id), requesterID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTextNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, text)
}

// ListTexts godoc
// @Summary List the caller's stored passages
// @Tags generation
// @Produce  json
// @Param   page query int false "Page number" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Security BearerAuth
// @Router /api/texts [get]
func (c *GenerationController) ListTexts(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	texts, total, err := c.GenerationService.ListTexts(claims.UserID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  texts,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}
