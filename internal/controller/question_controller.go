package controller

import (
	"errors"
	"strconv"

	"litgen_backend/internal/model"
	"litgen_backend/internal/service"
	"litgen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// Generate godoc
// @Summary Generate assessment questions
// @Description Generates questions of one type for a passage; malformed items are dropped, so the result may hold fewer than requested
// @Tags questions
// @Accept  json
// @Produce  json
// @Param   body body model.GenerateQuestionsRequest true "Question parameters"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 400 {object} util.Response "No valid standards provided"
// @Router /api/generate-questions [post]
func (c *QuestionController) Generate(ctx *gin.Context) {
	var req model.GenerateQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.QuestionService.Generate(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, util.ErrNoValidStandards) {
			util.BadRequest(ctx, "No valid standards provided")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"questions": questions})
}

// ListForText godoc
// @Summary List stored question sets for a passage
// @Tags questions
// @Produce  json
// @Param   id path int true "Text ID"
// @Success 200 {object} util.Response{data=[]model.GeneratedQuestionSet}
// @Failure 404 {object} util.Response
// @Security BearerAuth
// @Router /api/texts/{id}/questions [get]
func (c *QuestionController) ListForText(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid text id")
		return
	}

	sets, err := c.QuestionService.ListForText(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrTextNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, sets)
}
