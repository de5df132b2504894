package service

import (
	"context"
	"fmt"
	"time"

	"litgen_backend/internal/model"
	"litgen_backend/internal/prompt"
	"litgen_backend/internal/repository"
	"litgen_backend/internal/resolve"
	"litgen_backend/internal/util"
	"litgen_backend/pkg/logger"
	"litgen_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	passageMaxTokens = 4096
	notesMaxTokens   = 2048
)

// GenerationService orchestrates the two-call passage flow: one model
// call for the passage, a dependent call for teacher notes, then
// persistence. Model failures degrade to placeholder content instead of
// surfacing as errors; the only hard failure before persistence is a
// request with no resolvable standards.
type GenerationService struct {
	ai        ChatCompleter
	standards *StandardService
	texts     *repository.TextRepository
}

func NewGenerationService(ai ChatCompleter, standards *StandardService, texts *repository.TextRepository) *GenerationService {
	return &GenerationService{ai: ai, standards: standards, texts: texts}
}

// ModifiedPassage is the transient result of a passage modification.
// Nothing is persisted; the client owns the edited draft until it
// regenerates or exports.
type ModifiedPassage struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	TeacherNotes string `json:"teacherNotes"`
	Success      bool   `json:"success"`
}

// Generate produces a passage plus teacher notes and stores the result.
// userID may be nil for anonymous generation.
func (s *GenerationService) Generate(ctx context.Context, req model.GenerateTextRequest, userID *uint) (*model.GeneratedText, error) {
	standards := s.standards.Resolve(req.StandardIDs)
	if len(standards) == 0 {
		return nil, util.ErrNoValidStandards
	}
	for _, std := range standards {
		if req.TextType == "narrative" && !std.AppliesToNarrative() {
			logger.Log.Warn("informational standard requested for a narrative text",
				zap.String("code", std.Code))
		}
	}

	passage := s.generatePassage(ctx, req, standards)
	notes := s.generateNotes(ctx, standards, passage.Content)

	text := &model.GeneratedText{
		Title:        passage.Title,
		Content:      passage.Content,
		TeacherNotes: notes,
		GradeID:      req.GradeID,
		UserID:       userID,
		StandardIDs:  datatypes.JSONSlice[string](req.StandardIDs),
		ReadingLevel: req.ReadingLevel,
		TextType:     req.TextType,
	}
	if err := s.texts.Create(text); err != nil {
		return nil, err
	}
	return text, nil
}

// ModifyPassage reworks an existing passage per the instruction and
// regenerates teacher notes for the new version. The result is returned
// without persisting; repeated modification of the same input produces
// independent outputs.
func (s *GenerationService) ModifyPassage(ctx context.Context, req model.ModifyPassageRequest) (*ModifiedPassage, error) {
	standards := s.standards.Resolve(req.StandardIDs)
	if len(standards) == 0 {
		return nil, util.ErrNoValidStandards
	}

	genReq := model.GenerateTextRequest{
		StandardIDs:  req.StandardIDs,
		GradeID:      req.GradeLevel,
		ReadingLevel: req.ReadingLevel,
		WordCount:    "maintain the current length",
		TextType:     req.TextType,
		Topic:        req.Title,
		CustomContext: fmt.Sprintf(
			"Existing title: %q. Existing passage: %q. Modification instruction: %s",
			req.Title, req.Passage, req.Instruction),
	}

	passage := s.generatePassage(ctx, genReq, standards)
	notes := s.generateNotes(ctx, standards, passage.Content)

	return &ModifiedPassage{
		Title:        passage.Title,
		Content:      passage.Content,
		TeacherNotes: notes,
		Success:      true,
	}, nil
}

func (s *GenerationService) generatePassage(ctx context.Context, req model.GenerateTextRequest, standards []model.Standard) resolve.Passage {
	fallbackTitle := fallbackTitleFor(req)

	start := time.Now()
	raw, err := s.ai.Complete(ctx, prompt.Passage(req, standards), passageMaxTokens)
	monitoring.ModelRequestDuration.WithLabelValues("passage").Observe(time.Since(start).Seconds())

	var passage resolve.Passage
	if err != nil {
		logger.Log.Error("passage generation call failed", zap.Error(err))
		passage = resolve.RequestErrorPassage(fallbackTitle)
	} else {
		passage = resolve.PassageFrom(raw, fallbackTitle)
	}

	monitoring.GenerationCounter.WithLabelValues("passage", passage.Source.String()).Inc()
	if passage.Source != resolve.SourceDirect {
		logger.Log.Warn("passage resolved through fallback chain",
			zap.String("source", passage.Source.String()),
			zap.String("grade", req.GradeID))
	}
	return passage
}

func (s *GenerationService) generateNotes(ctx context.Context, standards []model.Standard, passage string) string {
	start := time.Now()
	raw, err := s.ai.Complete(ctx, prompt.TeacherNotes(standards, passage), notesMaxTokens)
	monitoring.ModelRequestDuration.WithLabelValues("notes").Observe(time.Since(start).Seconds())

	if err != nil {
		logger.Log.Error("teacher notes call failed", zap.Error(err))
		monitoring.GenerationCounter.WithLabelValues("notes", "fallback").Inc()
		return resolve.NotesUnavailable
	}

	notes, source := resolve.NotesFrom(raw)
	monitoring.GenerationCounter.WithLabelValues("notes", source.String()).Inc()
	return notes
}

// fallbackTitleFor picks the title used when the model omits one: the
// requested topic when present, otherwise a generic label by text type.
func fallbackTitleFor(req model.GenerateTextRequest) string {
	if req.Topic != "" {
		return req.Topic
	}
	if req.TextType == "narrative" {
		return "A Short Story"
	}
	return "Informational Text"
}

// GetText fetches one stored text, refusing access to rows owned by a
// different user. Anonymous rows (nil UserID) are readable by anyone.
func (s *GenerationService) GetText(id uint, requesterID *uint) (*model.GeneratedText, error) {
	text, err := s.texts.FindByID(id)
	if err != nil {
		return nil, util.ErrTextNotFound
	}
	if text.UserID != nil && (requesterID == nil || *text.UserID != *requesterID) {
		return nil, util.ErrPermissionDenied
	}
	return text, nil
}

func (s *GenerationService) ListTexts(userID uint, page, limit int) ([]model.GeneratedText, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.texts.ListByUser(userID, page, limit)
}
