package service

import (
	"context"
	"encoding/json"
	"time"

	"litgen_backend/internal/model"
	"litgen_backend/internal/prompt"
	"litgen_backend/internal/repository"
	"litgen_backend/internal/resolve"
	"litgen_backend/internal/util"
	"litgen_backend/pkg/logger"
	"litgen_backend/pkg/monitoring"

	"go.uber.org/zap"
)

const questionsMaxTokens = 4096

// QuestionService orchestrates assessment question generation. The
// resolver discards unparsable responses wholesale; this layer then
// drops individual questions that fail structural validation, so a
// response is never an error, just possibly an empty list.
type QuestionService struct {
	ai        ChatCompleter
	standards *StandardService
	questions *repository.QuestionRepository
	texts     *repository.TextRepository
}

func NewQuestionService(ai ChatCompleter, standards *StandardService, questions *repository.QuestionRepository, texts *repository.TextRepository) *QuestionService {
	return &QuestionService{ai: ai, standards: standards, questions: questions, texts: texts}
}

// Generate produces up to req.Count questions of the requested type.
// When req.GeneratedTextID refers to a stored text, the set is appended
// to that text's collection; otherwise the questions are only returned.
func (s *QuestionService) Generate(ctx context.Context, req model.GenerateQuestionsRequest) ([]model.Question, error) {
	standards := s.standards.Resolve(req.StandardIDs)
	if len(standards) == 0 {
		return nil, util.ErrNoValidStandards
	}

	start := time.Now()
	raw, err := s.ai.Complete(ctx, prompt.Questions(req, standards), questionsMaxTokens)
	monitoring.ModelRequestDuration.WithLabelValues("questions").Observe(time.Since(start).Seconds())

	if err != nil {
		logger.Log.Error("question generation call failed", zap.Error(err))
		monitoring.GenerationCounter.WithLabelValues("questions", "fallback").Inc()
		return []model.Question{}, nil
	}

	decoded, source := resolve.QuestionsFrom(raw)
	monitoring.GenerationCounter.WithLabelValues("questions", source.String()).Inc()

	questions := make([]model.Question, 0, len(decoded))
	for i, q := range decoded {
		if q.Type == "" {
			q.Type = req.QuestionType
		}
		if err := q.Validate(); err != nil {
			logger.Log.Warn("discarding malformed question",
				zap.Int("index", i),
				zap.String("type", string(req.QuestionType)),
				zap.Error(err))
			continue
		}
		questions = append(questions, q)
	}
	if len(questions) > req.Count {
		questions = questions[:req.Count]
	}

	if req.GeneratedTextID != 0 && len(questions) > 0 {
		s.persistSet(req, questions)
	}

	return questions, nil
}

// persistSet appends the batch to the owning text. Persistence failure
// is logged but never hides the generated questions from the caller.
func (s *QuestionService) persistSet(req model.GenerateQuestionsRequest, questions []model.Question) {
	if _, err := s.texts.FindByID(req.GeneratedTextID); err != nil {
		logger.Log.Warn("question set references unknown text",
			zap.Uint("textId", req.GeneratedTextID))
		return
	}

	data, err := json.Marshal(questions)
	if err != nil {
		logger.Log.Error("failed to encode question set", zap.Error(err))
		return
	}

	set := &model.GeneratedQuestionSet{
		GeneratedTextID: req.GeneratedTextID,
		QuestionType:    string(req.QuestionType),
		QuestionData:    data,
	}
	if err := s.questions.CreateSet(set); err != nil {
		logger.Log.Error("failed to persist question set",
			zap.Uint("textId", req.GeneratedTextID),
			zap.Error(err))
	}
}

// ListForText returns every stored question set for a text in creation
// order.
func (s *QuestionService) ListForText(textID uint) ([]model.GeneratedQuestionSet, error) {
	if _, err := s.texts.FindByID(textID); err != nil {
		return nil, util.ErrTextNotFound
	}
	return s.questions.ListByTextID(textID)
}
