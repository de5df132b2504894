package resolve

import (
	"strings"
	"testing"

	"litgen_backend/internal/model"
	"litgen_backend/internal/prompt"
)

func TestPassageFromDirectJSON(t *testing.T) {
	raw := `{"title": "The River Journey", "content": "1\tOnce upon a time...\n\n2\tThe next day..."}`
	p := PassageFrom(raw, "Fallback")
	if p.Source != SourceDirect {
		t.Fatalf("source = %s, want direct", p.Source)
	}
	if p.Title != "The River Journey" {
		t.Errorf("title = %q", p.Title)
	}
	if !strings.HasPrefix(p.Content, "1\t") {
		t.Errorf("content lost paragraph numbering: %q", p.Content)
	}
}

func TestPassageFromWrappedJSON(t *testing.T) {
	raw := "Here is your passage:\n```json\n" +
		`{"title": "Bees at Work", "content": "1\tBees are busy insects."}` +
		"\n```\nLet me know if you need changes."
	p := PassageFrom(raw, "Fallback")
	if p.Source != SourceExtracted {
		t.Fatalf("source = %s, want extracted", p.Source)
	}
	if p.Title != "Bees at Work" {
		t.Errorf("title = %q", p.Title)
	}
}

func TestPassageFromEmptyResponse(t *testing.T) {
	p := PassageFrom("   ", "Volcanoes")
	if p.Source != SourceFallback {
		t.Fatalf("source = %s, want fallback", p.Source)
	}
	if p.Title != "Volcanoes" {
		t.Errorf("title = %q, want fallback title", p.Title)
	}
	if p.Content != EmptyResponseContent {
		t.Errorf("content = %q", p.Content)
	}
}

func TestPassageFromUnparsableText(t *testing.T) {
	p := PassageFrom("I'm sorry, I can't help with that.", "Fallback")
	if p.Source != SourceFallback {
		t.Fatalf("source = %s, want fallback", p.Source)
	}
	if p.Content != UnparsableContent {
		t.Errorf("content = %q", p.Content)
	}
}

func TestPassageFromMissingFields(t *testing.T) {
	p := PassageFrom(`{"title": "", "content": ""}`, "Fallback")
	if p.Title != "Fallback" {
		t.Errorf("title = %q, want fallback substitution", p.Title)
	}
	if p.Content != MissingFieldContent {
		t.Errorf("content = %q", p.Content)
	}
}

func TestRequestErrorPassageKeepsParagraphContract(t *testing.T) {
	p := RequestErrorPassage("Fallback")
	for i, line := range strings.Split(p.Content, "\n\n") {
		if !strings.Contains(line, "\t") {
			t.Errorf("paragraph %d missing tab separator: %q", i+1, line)
		}
	}
}

func TestNotesFromDirectJSON(t *testing.T) {
	notes, source := NotesFrom(`{"notes": "Key concepts: photosynthesis."}`)
	if source != SourceDirect {
		t.Fatalf("source = %s, want direct", source)
	}
	if notes != "Key concepts: photosynthesis." {
		t.Errorf("notes = %q", notes)
	}
}

func TestNotesFromRawText(t *testing.T) {
	raw := "Key concepts and vocabulary:\n- habitat\n\nDiscussion questions:\n1. Why do birds migrate?"
	notes, source := NotesFrom(raw)
	if source != SourceRaw {
		t.Fatalf("source = %s, want raw", source)
	}
	if notes != raw {
		t.Errorf("raw notes were altered")
	}
}

func TestNotesFromGarbage(t *testing.T) {
	notes, source := NotesFrom("42")
	if source != SourceFallback {
		t.Fatalf("source = %s, want fallback", source)
	}
	if notes != NotesUnparsable {
		t.Errorf("notes = %q", notes)
	}
}

// Empty and unparsable responses report different defaults so support
// can tell a silent model from a noncompliant one.
func TestNotesFromEmptyResponse(t *testing.T) {
	notes, source := NotesFrom("")
	if source != SourceFallback {
		t.Fatalf("source = %s, want fallback", source)
	}
	if notes != NotesUnavailable {
		t.Errorf("notes = %q", notes)
	}
	if NotesUnavailable == NotesUnparsable {
		t.Error("empty and unparsable defaults must differ")
	}
}

func TestNotesFromEmptyNotesField(t *testing.T) {
	notes, _ := NotesFrom(`{"notes": ""}`)
	if notes != NotesMissingField {
		t.Errorf("notes = %q", notes)
	}
}

// The prompt examples define the exact shapes the model is told to
// return, so each must survive the resolver and validate cleanly.
func TestQuestionsFromPromptExamples(t *testing.T) {
	for _, qt := range []model.QuestionType{
		model.MultipleChoice,
		model.MultipleSelect,
		model.OpenResponse,
		model.TwoPart,
	} {
		t.Run(string(qt), func(t *testing.T) {
			questions, source := QuestionsFrom(prompt.FormatExample(qt))
			if source != SourceDirect {
				t.Fatalf("source = %s, want direct", source)
			}
			if len(questions) != 1 {
				t.Fatalf("got %d questions, want 1", len(questions))
			}
			q := questions[0]
			if q.Type != qt {
				t.Errorf("type = %s, want %s", q.Type, qt)
			}
			if err := q.Validate(); err != nil {
				t.Errorf("example question failed validation: %v", err)
			}
		})
	}
}

func TestQuestionsFromWrappedJSON(t *testing.T) {
	raw := "Sure! Here are the questions:\n" + prompt.FormatExample(model.MultipleChoice)
	questions, source := QuestionsFrom(raw)
	if source != SourceExtracted {
		t.Fatalf("source = %s, want extracted", source)
	}
	if len(questions) != 1 {
		t.Fatalf("got %d questions", len(questions))
	}
}

func TestQuestionsFromUnparsableDiscardsWholesale(t *testing.T) {
	questions, source := QuestionsFrom(`{"questions": [{"broken`)
	if source != SourceFallback {
		t.Fatalf("source = %s, want fallback", source)
	}
	if questions != nil {
		t.Errorf("expected nil questions, got %v", questions)
	}
}

func TestQuestionsFromEmptyResponse(t *testing.T) {
	questions, source := QuestionsFrom("")
	if questions != nil || source != SourceFallback {
		t.Errorf("got %v/%s, want nil/fallback", questions, source)
	}
}

func TestSourceString(t *testing.T) {
	cases := map[Source]string{
		SourceDirect:    "direct",
		SourceExtracted: "extracted",
		SourceRaw:       "raw",
		SourceFallback:  "fallback",
	}
	for src, want := range cases {
		if got := src.String(); got != want {
			t.Errorf("Source(%d).String() = %q, want %q", src, got, want)
		}
	}
}
