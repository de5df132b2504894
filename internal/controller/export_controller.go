package controller

import (
	"litgen_backend/internal/service"
	"litgen_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	ExportService *service.ExportService
}

func NewExportController(exportService *service.ExportService) *ExportController {
	return &ExportController{ExportService: exportService}
}

// ExportRequest is the body of POST /api/export/google-docs.
type ExportRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// ExportToGoogleDocs godoc
// @Summary Export a passage to Google Docs
// @Description Reformats the passage for pasting and returns a create-document URL
// @Tags export
// @Accept  json
// @Produce  json
// @Param   body body ExportRequest true "Document to export"
// @Success 200 {object} util.Response{data=service.ExportResult}
// @Failure 400 {object} util.Response
// @Router /api/export/google-docs [post]
func (c *ExportController) ExportToGoogleDocs(ctx *gin.Context) {
	var req ExportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result := c.ExportService.ExportToGoogleDocs(ctx.Request.Context(), req.Title, req.Content)
	util.Success(ctx, result)
}
