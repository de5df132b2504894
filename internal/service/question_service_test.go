package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"litgen_backend/internal/model"
	"litgen_backend/internal/prompt"
	"litgen_backend/internal/repository"
	"litgen_backend/internal/util"

	"gorm.io/datatypes"
)

func newQuestionFixture(t *testing.T, ai *fakeCompleter) (*QuestionService, *repository.TextRepository, *repository.QuestionRepository) {
	t.Helper()
	db := testDB(t)
	texts := repository.NewTextRepository(db)
	questions := repository.NewQuestionRepository(db)
	return NewQuestionService(ai, testStandardService(t, db), questions, texts), texts, questions
}

func questionsRequest(qt model.QuestionType, count int) model.GenerateQuestionsRequest {
	return model.GenerateQuestionsRequest{
		Passage:      "1\tThe river wound through the valley.",
		QuestionType: qt,
		StandardIDs:  []string{"3-rl-1"},
		Count:        count,
		GradeLevel:   "3",
	}
}

func TestGenerateQuestionsFromExampleShapes(t *testing.T) {
	for _, qt := range []model.QuestionType{
		model.MultipleChoice,
		model.MultipleSelect,
		model.OpenResponse,
		model.TwoPart,
	} {
		t.Run(string(qt), func(t *testing.T) {
			ai := &fakeCompleter{responses: []string{prompt.FormatExample(qt)}}
			svc, _, _ := newQuestionFixture(t, ai)

			questions, err := svc.Generate(context.Background(), questionsRequest(qt, 3))
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if len(questions) != 1 {
				t.Fatalf("got %d questions, want 1", len(questions))
			}
			if questions[0].Type != qt {
				t.Errorf("type = %s", questions[0].Type)
			}
		})
	}
}

func TestGenerateQuestionsFiltersInvalidItems(t *testing.T) {
	// Three items: one valid, one with the wrong option count, one with
	// two correct answers on a single-answer type.
	raw := `{"questions": [
		{"id": "q1", "type": "multiple-choice", "question": "Valid?", "options": [
			{"id": "A", "text": "a", "isCorrect": true},
			{"id": "B", "text": "b", "isCorrect": false},
			{"id": "C", "text": "c", "isCorrect": false},
			{"id": "D", "text": "d", "isCorrect": false}
		]},
		{"id": "q2", "type": "multiple-choice", "question": "Too few options?", "options": [
			{"id": "A", "text": "a", "isCorrect": true},
			{"id": "B", "text": "b", "isCorrect": false}
		]},
		{"id": "q3", "type": "multiple-choice", "question": "Two correct?", "options": [
			{"id": "A", "text": "a", "isCorrect": true},
			{"id": "B", "text": "b", "isCorrect": true},
			{"id": "C", "text": "c", "isCorrect": false},
			{"id": "D", "text": "d", "isCorrect": false}
		]}
	]}`
	ai := &fakeCompleter{responses: []string{raw}}
	svc, _, _ := newQuestionFixture(t, ai)

	questions, err := svc.Generate(context.Background(), questionsRequest(model.MultipleChoice, 3))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions, want 1 survivor", len(questions))
	}
	if questions[0].ID != "q1" {
		t.Errorf("survivor = %s, want q1", questions[0].ID)
	}
}

func multiSelectResponse() string {
	item := `{"id": "%s", "type": "multiple-select", "question": "%s", "correctCount": 2, "options": [
		{"id": "A", "text": "a", "isCorrect": true},
		{"id": "B", "text": "b", "isCorrect": false},
		{"id": "C", "text": "c", "isCorrect": true},
		{"id": "D", "text": "d", "isCorrect": false},
		{"id": "E", "text": "e", "isCorrect": false},
		{"id": "F", "text": "f", "isCorrect": false}
	]}`
	return `{"questions": [` +
		fmt.Sprintf(item, "q1", "First?") + "," +
		fmt.Sprintf(item, "q2", "Second?") + `]}`
}

func TestGenerateMultipleSelectInvariants(t *testing.T) {
	ai := &fakeCompleter{responses: []string{multiSelectResponse()}}
	svc, _, _ := newQuestionFixture(t, ai)

	questions, err := svc.Generate(context.Background(), questionsRequest(model.MultipleSelect, 2))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(questions))
	}
	for _, q := range questions {
		if len(q.Options) != 6 {
			t.Errorf("%s: %d options, want 6", q.ID, len(q.Options))
		}
		if n := model.CountCorrect(q.Options); n != q.CorrectCount {
			t.Errorf("%s: %d correct options, correctCount = %d", q.ID, n, q.CorrectCount)
		}
	}
}

// Identical inputs against a model returning the same text must produce
// structurally identical sets.
func TestGenerateQuestionsStructurallyIdempotent(t *testing.T) {
	raw := multiSelectResponse()
	ai := &fakeCompleter{responses: []string{raw, raw}}
	svc, _, _ := newQuestionFixture(t, ai)

	req := questionsRequest(model.MultipleSelect, 2)
	first, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	second, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Type != second[i].Type {
			t.Errorf("question %d types differ: %s vs %s", i, first[i].Type, second[i].Type)
		}
		if len(first[i].Options) != len(second[i].Options) {
			t.Errorf("question %d option counts differ", i)
		}
	}
}

func TestGenerateQuestionsModelFailureReturnsEmpty(t *testing.T) {
	ai := &fakeCompleter{responses: []string{""}, errs: []error{errors.New("boom")}}
	svc, _, _ := newQuestionFixture(t, ai)

	questions, err := svc.Generate(context.Background(), questionsRequest(model.OpenResponse, 2))
	if err != nil {
		t.Fatalf("model failure must not fail the request: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("got %d questions, want 0", len(questions))
	}
}

func TestGenerateQuestionsUnparsableReturnsEmpty(t *testing.T) {
	ai := &fakeCompleter{responses: []string{"I cannot produce questions right now."}}
	svc, _, _ := newQuestionFixture(t, ai)

	questions, err := svc.Generate(context.Background(), questionsRequest(model.TwoPart, 2))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("got %d questions, want 0", len(questions))
	}
}

func TestGenerateQuestionsRejectsUnknownStandards(t *testing.T) {
	svc, _, _ := newQuestionFixture(t, &fakeCompleter{})

	req := questionsRequest(model.MultipleChoice, 2)
	req.StandardIDs = []string{"bogus"}

	if _, err := svc.Generate(context.Background(), req); !errors.Is(err, util.ErrNoValidStandards) {
		t.Fatalf("err = %v, want ErrNoValidStandards", err)
	}
}

func TestGenerateQuestionsTruncatesToCount(t *testing.T) {
	ai := &fakeCompleter{responses: []string{`{"questions": [
		{"id": "q1", "type": "open-response", "question": "One?", "sampleResponse": "s", "scoringGuidelines": "g"},
		{"id": "q2", "type": "open-response", "question": "Two?", "sampleResponse": "s", "scoringGuidelines": "g"},
		{"id": "q3", "type": "open-response", "question": "Three?", "sampleResponse": "s", "scoringGuidelines": "g"}
	]}`}}
	svc, _, _ := newQuestionFixture(t, ai)

	questions, err := svc.Generate(context.Background(), questionsRequest(model.OpenResponse, 2))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("got %d questions, want 2", len(questions))
	}
}

func TestGenerateQuestionsPersistsSetForKnownText(t *testing.T) {
	ai := &fakeCompleter{responses: []string{prompt.FormatExample(model.MultipleChoice)}}
	svc, texts, sets := newQuestionFixture(t, ai)

	text := &model.GeneratedText{
		Title:        "T",
		Content:      "1\tBody.",
		GradeID:      "3",
		StandardIDs:  datatypes.JSONSlice[string]{"3-rl-1"},
		ReadingLevel: "at",
		TextType:     "narrative",
	}
	if err := texts.Create(text); err != nil {
		t.Fatalf("create text: %v", err)
	}

	req := questionsRequest(model.MultipleChoice, 3)
	req.GeneratedTextID = text.ID

	questions, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	stored, err := sets.ListByTextID(text.ID)
	if err != nil {
		t.Fatalf("ListByTextID: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("got %d stored sets, want 1", len(stored))
	}
	if stored[0].QuestionType != string(model.MultipleChoice) {
		t.Errorf("stored type = %s", stored[0].QuestionType)
	}

	var decoded []model.Question
	if err := json.Unmarshal(stored[0].QuestionData, &decoded); err != nil {
		t.Fatalf("decode stored set: %v", err)
	}
	if len(decoded) != len(questions) {
		t.Errorf("stored %d questions, returned %d", len(decoded), len(questions))
	}
}

func TestGenerateQuestionsSkipsPersistForUnknownText(t *testing.T) {
	ai := &fakeCompleter{responses: []string{prompt.FormatExample(model.MultipleChoice)}}
	svc, _, sets := newQuestionFixture(t, ai)

	req := questionsRequest(model.MultipleChoice, 3)
	req.GeneratedTextID = 9999

	questions, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions) != 1 {
		t.Errorf("questions should still be returned, got %d", len(questions))
	}

	stored, _ := sets.ListByTextID(9999)
	if len(stored) != 0 {
		t.Errorf("stored %d sets for unknown text, want 0", len(stored))
	}
}

func TestListForTextUnknownText(t *testing.T) {
	svc, _, _ := newQuestionFixture(t, &fakeCompleter{})

	if _, err := svc.ListForText(123); !errors.Is(err, util.ErrTextNotFound) {
		t.Fatalf("err = %v, want ErrTextNotFound", err)
	}
}
