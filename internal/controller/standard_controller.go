package controller

import (
	"litgen_backend/internal/data"
	"litgen_backend/internal/service"
	"litgen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StandardController struct {
	StandardService *service.StandardService
}

func NewStandardController(standardService *service.StandardService) *StandardController {
	return &StandardController{StandardService: standardService}
}

// GetStandards godoc
// @Summary List ELA standards for a grade
// @Description Returns the grade's standard categories with their standards nested
// @Tags standards
// @Produce  json
// @Param   gradeId path string true "Grade identifier (k, 1-8)"
// @Success 200 {object} util.Response{data=[]model.StandardCategory}
// @Failure 400 {object} util.Response "Unknown grade"
// @Router /api/standards/{gradeId} [get]
func (c *StandardController) GetStandards(ctx *gin.Context) {
	gradeID := ctx.Param("gradeId")
	if !validGrade(gradeID) {
		util.BadRequest(ctx, "unknown grade: "+gradeID)
		return
	}

	categories, err := c.StandardService.CategoriesForGrade(ctx.Request.Context(), gradeID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, categories)
}

// GetGrades godoc
// @Summary List supported grade levels
// @Tags standards
// @Produce  json
// @Success 200 {object} util.Response{data=[]data.GradeLevel}
// @Router /api/grades [get]
func (c *StandardController) GetGrades(ctx *gin.Context) {
	util.Success(ctx, data.GradeLevels)
}

func validGrade(gradeID string) bool {
	for _, g := range data.GradeLevels {
		if g.ID == gradeID {
			return true
		}
	}
	return false
}
