package model

import "fmt"

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple-choice"
	MultipleSelect QuestionType = "multiple-select"
	OpenResponse   QuestionType = "open-response"
	TwoPart        QuestionType = "two-part"
)

func (t QuestionType) Valid() bool {
	switch t {
	case MultipleChoice, MultipleSelect, OpenResponse, TwoPart:
		return true
	}
	return false
}

// AnswerOption is one lettered choice in a selected-response question.
type AnswerOption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuestionPart is Part A or Part B of a two-part question. Part A is
// always a 4-option single-answer item; Part B is either that or a
// 6-option multi-select with CorrectCount answers.
type QuestionPart struct {
	Question      string         `json:"question"`
	Options       []AnswerOption `json:"options"`
	IsMultiSelect bool           `json:"isMultiSelect,omitempty"`
	CorrectCount  int            `json:"correctCount,omitempty"`
}

// Question is the tagged union of the four assessment item shapes,
// discriminated by Type. Only the fields belonging to the variant are
// populated; Validate enforces the per-variant structure.
//
// swagger:model Question
type Question struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Question    string       `json:"question"`
	StandardID  string       `json:"standardId"`
	Explanation string       `json:"explanation,omitempty"`

	// multiple-choice and multiple-select
	Options      []AnswerOption `json:"options,omitempty"`
	CorrectCount int            `json:"correctCount,omitempty"`

	// open-response
	SampleResponse    string `json:"sampleResponse,omitempty"`
	ScoringGuidelines string `json:"scoringGuidelines,omitempty"`

	// two-part
	PartA *QuestionPart `json:"partA,omitempty"`
	PartB *QuestionPart `json:"partB,omitempty"`
}

// CountCorrect returns how many options are marked correct.
func CountCorrect(options []AnswerOption) int {
	n := 0
	for _, o := range options {
		if o.IsCorrect {
			n++
		}
	}
	return n
}

// Validate checks the structural invariants of the question's variant:
// option counts, answer counts, and the presence of variant-specific
// fields. Whether a two-part Part B uses multi-select for high rigor
// levels is a prompt-level convention and deliberately not checked here.
func (q *Question) Validate() error {
	if !q.Type.Valid() {
		return fmt.Errorf("unknown question type %q", q.Type)
	}
	if q.Question == "" {
		return fmt.Errorf("%s question has empty prompt", q.Type)
	}

	switch q.Type {
	case MultipleChoice:
		if len(q.Options) != 4 {
			return fmt.Errorf("multiple-choice question needs 4 options, got %d", len(q.Options))
		}
		if n := CountCorrect(q.Options); n != 1 {
			return fmt.Errorf("multiple-choice question needs exactly 1 correct option, got %d", n)
		}

	case MultipleSelect:
		if len(q.Options) != 6 {
			return fmt.Errorf("multiple-select question needs 6 options, got %d", len(q.Options))
		}
		if q.CorrectCount < 1 {
			return fmt.Errorf("multiple-select question missing correctCount")
		}
		if n := CountCorrect(q.Options); n != q.CorrectCount {
			return fmt.Errorf("multiple-select question has %d correct options, correctCount says %d", n, q.CorrectCount)
		}

	case OpenResponse:
		if len(q.Options) != 0 {
			return fmt.Errorf("open-response question must not have options")
		}
		if q.SampleResponse == "" {
			return fmt.Errorf("open-response question missing sampleResponse")
		}
		if q.ScoringGuidelines == "" {
			return fmt.Errorf("open-response question missing scoringGuidelines")
		}

	case TwoPart:
		if q.PartA == nil || q.PartB == nil {
			return fmt.Errorf("two-part question missing partA or partB")
		}
		if len(q.PartA.Options) != 4 {
			return fmt.Errorf("two-part Part A needs 4 options, got %d", len(q.PartA.Options))
		}
		if n := CountCorrect(q.PartA.Options); n != 1 {
			return fmt.Errorf("two-part Part A needs exactly 1 correct option, got %d", n)
		}
		if q.PartB.IsMultiSelect {
			if len(q.PartB.Options) != 6 {
				return fmt.Errorf("two-part multi-select Part B needs 6 options, got %d", len(q.PartB.Options))
			}
			if q.PartB.CorrectCount < 1 {
				return fmt.Errorf("two-part multi-select Part B missing correctCount")
			}
			if n := CountCorrect(q.PartB.Options); n != q.PartB.CorrectCount {
				return fmt.Errorf("two-part Part B has %d correct options, correctCount says %d", n, q.PartB.CorrectCount)
			}
		} else {
			if len(q.PartB.Options) != 4 {
				return fmt.Errorf("two-part single-answer Part B needs 4 options, got %d", len(q.PartB.Options))
			}
			if n := CountCorrect(q.PartB.Options); n != 1 {
				return fmt.Errorf("two-part Part B needs exactly 1 correct option, got %d", n)
			}
		}
	}

	return nil
}
