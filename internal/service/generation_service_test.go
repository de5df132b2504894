package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"litgen_backend/internal/model"
	"litgen_backend/internal/repository"
	"litgen_backend/internal/resolve"
	"litgen_backend/internal/util"
)

func newGenerationFixture(t *testing.T, ai *fakeCompleter) (*GenerationService, *repository.TextRepository) {
	t.Helper()
	db := testDB(t)
	texts := repository.NewTextRepository(db)
	return NewGenerationService(ai, testStandardService(t, db), texts), texts
}

func generateRequest() model.GenerateTextRequest {
	return model.GenerateTextRequest{
		StandardIDs:  []string{"3-rl-1", "3-rl-2"},
		GradeID:      "3",
		ReadingLevel: "at",
		WordCount:    "300",
		TextType:     "narrative",
		Topic:        "a lost dog",
	}
}

func TestGeneratePersistsPassageAndNotes(t *testing.T) {
	ai := &fakeCompleter{responses: []string{
		`{"title": "Max Finds His Way", "content": "1\tMax the dog sniffed the air.\n\n2\tHe was lost."}`,
		`{"notes": "Key concepts: setting, perseverance."}`,
	}}
	svc, texts := newGenerationFixture(t, ai)

	text, err := svc.Generate(context.Background(), generateRequest(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if text.Title != "Max Finds His Way" {
		t.Errorf("title = %q", text.Title)
	}
	if !strings.HasPrefix(text.Content, "1\t") {
		t.Errorf("content lost numbering: %q", text.Content)
	}
	if text.TeacherNotes != "Key concepts: setting, perseverance." {
		t.Errorf("notes = %q", text.TeacherNotes)
	}
	if len(ai.prompts) != 2 {
		t.Fatalf("expected 2 model calls, got %d", len(ai.prompts))
	}
	if !strings.Contains(ai.prompts[1], "Max the dog sniffed the air.") {
		t.Error("notes prompt should embed the generated passage")
	}

	stored, err := texts.FindByID(text.ID)
	if err != nil {
		t.Fatalf("stored text not found: %v", err)
	}
	if stored.GradeID != "3" || stored.TextType != "narrative" {
		t.Errorf("stored metadata = %s/%s", stored.GradeID, stored.TextType)
	}
	if len(stored.StandardIDs) != 2 {
		t.Errorf("stored standard ids = %v", stored.StandardIDs)
	}
}

func TestGenerateRejectsUnknownStandards(t *testing.T) {
	svc, _ := newGenerationFixture(t, &fakeCompleter{})

	req := generateRequest()
	req.StandardIDs = []string{"nope", "also-nope"}

	_, err := svc.Generate(context.Background(), req, nil)
	if !errors.Is(err, util.ErrNoValidStandards) {
		t.Fatalf("err = %v, want ErrNoValidStandards", err)
	}
}

func TestGenerateResolvesStandardCodes(t *testing.T) {
	ai := &fakeCompleter{responses: []string{
		`{"title": "T", "content": "1\tBody."}`,
		`{"notes": "N"}`,
	}}
	svc, _ := newGenerationFixture(t, ai)

	req := generateRequest()
	req.StandardIDs = []string{"RL.3.1"}

	if _, err := svc.Generate(context.Background(), req, nil); err != nil {
		t.Fatalf("Generate with code identifier: %v", err)
	}
	if !strings.Contains(ai.prompts[0], "RL.3.1:") {
		t.Error("prompt missing standard resolved by code")
	}
}

func TestGenerateModelFailureProducesPlaceholder(t *testing.T) {
	ai := &fakeCompleter{
		responses: []string{"", ""},
		errs:      []error{errors.New("connection refused"), errors.New("connection refused")},
	}
	svc, _ := newGenerationFixture(t, ai)

	text, err := svc.Generate(context.Background(), generateRequest(), nil)
	if err != nil {
		t.Fatalf("model failure must not fail the request: %v", err)
	}

	if text.Title != "a lost dog" {
		t.Errorf("title = %q, want topic fallback", text.Title)
	}
	if text.Content != resolve.RequestErrorContent {
		t.Errorf("content = %q", text.Content)
	}
	if text.TeacherNotes != resolve.NotesUnavailable {
		t.Errorf("notes = %q", text.TeacherNotes)
	}
}

func TestGenerateNotesFailureIsIndependent(t *testing.T) {
	ai := &fakeCompleter{
		responses: []string{`{"title": "T", "content": "1\tGood passage."}`, ""},
		errs:      []error{nil, errors.New("timeout")},
	}
	svc, _ := newGenerationFixture(t, ai)

	text, err := svc.Generate(context.Background(), generateRequest(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text.Content != "1\tGood passage." {
		t.Errorf("passage should survive notes failure, got %q", text.Content)
	}
	if text.TeacherNotes != resolve.NotesUnavailable {
		t.Errorf("notes = %q", text.TeacherNotes)
	}
}

func TestGenerateFallbackTitleByTextType(t *testing.T) {
	for textType, want := range map[string]string{
		"narrative":     "A Short Story",
		"informational": "Informational Text",
	} {
		ai := &fakeCompleter{responses: []string{
			`{"content": "1\tBody without a title."}`,
			`{"notes": "N"}`,
		}}
		svc, _ := newGenerationFixture(t, ai)

		req := generateRequest()
		req.TextType = textType
		req.Topic = ""

		text, err := svc.Generate(context.Background(), req, nil)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if text.Title != want {
			t.Errorf("%s: title = %q, want %q", textType, text.Title, want)
		}
	}
}

func TestGenerateAttributesUser(t *testing.T) {
	ai := &fakeCompleter{responses: []string{
		`{"title": "T", "content": "1\tBody."}`,
		`{"notes": "N"}`,
	}}
	svc, _ := newGenerationFixture(t, ai)

	userID := uint(42)
	text, err := svc.Generate(context.Background(), generateRequest(), &userID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if text.UserID == nil || *text.UserID != 42 {
		t.Errorf("userID = %v, want 42", text.UserID)
	}
}

func TestModifyPassageDoesNotPersist(t *testing.T) {
	ai := &fakeCompleter{responses: []string{
		`{"title": "The Fox, Shorter", "content": "1\tA fox lived in the woods."}`,
		`{"notes": "Revised notes."}`,
	}}
	svc, texts := newGenerationFixture(t, ai)

	req := model.ModifyPassageRequest{
		Passage:      "1\tA fox lived deep in the dark woods near the river.",
		Title:        "The Fox",
		StandardIDs:  []string{"3-rl-1"},
		TextType:     "narrative",
		ReadingLevel: "at",
		GradeLevel:   "3",
		Instruction:  "Make it shorter.",
	}

	result, err := svc.ModifyPassage(context.Background(), req)
	if err != nil {
		t.Fatalf("ModifyPassage: %v", err)
	}
	if result.Title != "The Fox, Shorter" {
		t.Errorf("title = %q", result.Title)
	}
	if result.TeacherNotes != "Revised notes." {
		t.Errorf("notes = %q", result.TeacherNotes)
	}

	if !strings.Contains(ai.prompts[0], `Modification instruction: Make it shorter.`) {
		t.Error("prompt missing instruction")
	}
	if !strings.Contains(ai.prompts[0], "Existing passage:") {
		t.Error("prompt missing existing passage")
	}

	stored, err := texts.ListRecent(10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(stored) != 0 {
		t.Errorf("modification persisted %d rows, want 0", len(stored))
	}
}

func TestGetTextOwnership(t *testing.T) {
	ai := &fakeCompleter{responses: []string{
		`{"title": "T", "content": "1\tBody."}`,
		`{"notes": "N"}`,
	}}
	svc, _ := newGenerationFixture(t, ai)

	ownerID := uint(7)
	text, err := svc.Generate(context.Background(), generateRequest(), &ownerID)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := svc.GetText(text.ID, &ownerID); err != nil {
		t.Errorf("owner read failed: %v", err)
	}

	otherID := uint(8)
	if _, err := svc.GetText(text.ID, &otherID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("other user err = %v, want ErrPermissionDenied", err)
	}
	if _, err := svc.GetText(text.ID, nil); !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("anonymous err = %v, want ErrPermissionDenied", err)
	}

	if _, err := svc.GetText(9999, &ownerID); !errors.Is(err, util.ErrTextNotFound) {
		t.Errorf("missing text err = %v, want ErrTextNotFound", err)
	}
}
