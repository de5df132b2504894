// Package resolve recovers structured results from raw model output.
// The model is an untrusted text generator: it usually returns the JSON
// object it was asked for, but may wrap it in prose or markdown fences,
// or return something else entirely. Each resolver walks an ordered
// fallback chain (direct parse, embedded-object extraction, then a
// typed default) and never returns an error to the caller; every
// failure path produces a usable value of the right shape.
package resolve

import (
	"encoding/json"
	"regexp"
	"strings"

	"litgen_backend/internal/model"
)

// Source records which step of the fallback chain produced a result,
// for logging and metrics.
type Source int

const (
	// SourceDirect: the whole response parsed as JSON.
	SourceDirect Source = iota
	// SourceExtracted: a JSON object was cut out of surrounding text.
	SourceExtracted
	// SourceRaw: the raw text itself was used as the value.
	SourceRaw
	// SourceFallback: nothing usable; a typed default was substituted.
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceDirect:
		return "direct"
	case SourceExtracted:
		return "extracted"
	case SourceRaw:
		return "raw"
	default:
		return "fallback"
	}
}

// Deterministic defaults for the degraded paths. The passage strings
// keep the numbered-paragraph contract so downstream rendering and
// export behave the same for error content as for real content.
const (
	EmptyResponseContent = "1\tAn error occurred while generating the text. Please try again."
	MissingFieldContent  = "1\tError generating text. Please try again with different parameters."
	UnparsableContent    = "1\tAn error occurred while processing the generated text. Please try again."
	RequestErrorContent  = "1\tAn error occurred while generating the text. Please try again.\n\n" +
		"2\tIf this error persists, try selecting different standards or modifying your generation options."

	NotesMissingField = "Error generating teacher notes. Please try again."
	NotesUnavailable  = "Unable to generate teacher notes. Please try again."
	NotesUnparsable   = "Unable to generate teacher notes at this time. Please try again."
)

// Extraction patterns: the first brace-delimited region containing the
// expected marker fields. Greedy on purpose: models that emit several
// fragments usually nest the real object last, and json.Unmarshal
// rejects a bad cut anyway.
var (
	passagePattern   = regexp.MustCompile(`(?s)\{.*"title".*"content".*\}`)
	notesPattern     = regexp.MustCompile(`(?s)\{.*"notes".*\}`)
	questionsPattern = regexp.MustCompile(`(?s)\{.*"questions".*\}`)
)

// Passage is the resolved result of a passage-generation call.
type Passage struct {
	Title   string
	Content string
	Source  Source
}

type passagePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PassageFrom resolves raw model output into a title and passage body.
// fallbackTitle is used whenever the model omits a title (typically the
// requested topic, or a generic label derived from the text type).
func PassageFrom(raw, fallbackTitle string) Passage {
	if strings.TrimSpace(raw) == "" {
		return Passage{Title: fallbackTitle, Content: EmptyResponseContent, Source: SourceFallback}
	}

	var payload passagePayload
	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		return passageResult(payload, fallbackTitle, SourceDirect)
	}

	if match := passagePattern.FindString(raw); match != "" {
		if err := json.Unmarshal([]byte(match), &payload); err == nil {
			return passageResult(payload, fallbackTitle, SourceExtracted)
		}
	}

	return Passage{Title: fallbackTitle, Content: UnparsableContent, Source: SourceFallback}
}

func passageResult(payload passagePayload, fallbackTitle string, source Source) Passage {
	p := Passage{Title: payload.Title, Content: payload.Content, Source: source}
	if p.Title == "" {
		p.Title = fallbackTitle
	}
	if p.Content == "" {
		p.Content = MissingFieldContent
	}
	return p
}

// RequestErrorPassage is the absolute fallback for a failed or empty
// model call (network error, non-2xx, timeout).
func RequestErrorPassage(fallbackTitle string) Passage {
	return Passage{Title: fallbackTitle, Content: RequestErrorContent, Source: SourceFallback}
}

type notesPayload struct {
	Notes string `json:"notes"`
}

// NotesFrom resolves raw model output into a teacher-notes string. When
// the output is not JSON but still reads like notes (it contains the
// requested section headings), the raw text is used as-is. An empty
// response and an unparsable one carry distinct default messages;
// NotesUnavailable is also the caller's default for a failed call.
func NotesFrom(raw string) (string, Source) {
	if strings.TrimSpace(raw) == "" {
		return NotesUnavailable, SourceFallback
	}

	var payload notesPayload
	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		if payload.Notes == "" {
			return NotesMissingField, SourceDirect
		}
		return payload.Notes, SourceDirect
	}

	if match := notesPattern.FindString(raw); match != "" {
		if err := json.Unmarshal([]byte(match), &payload); err == nil && payload.Notes != "" {
			return payload.Notes, SourceExtracted
		}
	}

	if strings.Contains(raw, "Key concepts") || strings.Contains(raw, "Discussion questions") {
		return raw, SourceRaw
	}

	return NotesUnparsable, SourceFallback
}

type questionsPayload struct {
	Questions []model.Question `json:"questions"`
}

// QuestionsFrom resolves raw model output into a question slice. There
// is no partial recovery here: output that cannot be parsed as a
// questions object is discarded wholesale, because fragments of a
// question could silently violate the answer-count invariants. The
// caller still validates each decoded question individually.
func QuestionsFrom(raw string) ([]model.Question, Source) {
	if strings.TrimSpace(raw) == "" {
		return nil, SourceFallback
	}

	var payload questionsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err == nil {
		if payload.Questions == nil {
			return nil, SourceFallback
		}
		return payload.Questions, SourceDirect
	}

	if match := questionsPattern.FindString(raw); match != "" {
		if err := json.Unmarshal([]byte(match), &payload); err == nil && payload.Questions != nil {
			return payload.Questions, SourceExtracted
		}
	}

	return nil, SourceFallback
}
