package model

// GenerateTextRequest is the body of POST /api/generate. CustomContext
// is only set internally for passage modification and is not accepted
// from clients directly.
type GenerateTextRequest struct {
	StandardIDs   []string `json:"standardIds" binding:"required,min=1"`
	GradeID       string   `json:"gradeId" binding:"required"`
	ReadingLevel  string   `json:"readingLevel" binding:"required,oneof=below at above"`
	WordCount     string   `json:"wordCount" binding:"required"`
	TextType      string   `json:"textType" binding:"required,oneof=narrative informational"`
	Topic         string   `json:"topic"`
	CustomContext string   `json:"-"`
}

// ModifyPassageRequest is the body of POST /api/modify-passage.
// Instruction is one of the canned modifier commands (revise, stretch,
// shrink, level-up, level-down) or free teacher-supplied text.
type ModifyPassageRequest struct {
	Passage      string   `json:"passage" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	StandardIDs  []string `json:"standardIds" binding:"required,min=1"`
	TextType     string   `json:"textType" binding:"required,oneof=narrative informational"`
	ReadingLevel string   `json:"readingLevel" binding:"required,oneof=below at above"`
	GradeLevel   string   `json:"gradeLevel" binding:"required"`
	Instruction  string   `json:"instruction" binding:"required"`
}

// GenerateQuestionsRequest is the body of POST /api/generate-questions.
// RigorLevel defaults to 2 when omitted. GeneratedTextID is optional;
// when set, the produced set is appended to that text's collection.
type GenerateQuestionsRequest struct {
	Passage         string       `json:"passage" binding:"required"`
	QuestionType    QuestionType `json:"questionType" binding:"required,oneof=multiple-choice multiple-select open-response two-part"`
	StandardIDs     []string     `json:"standardIds" binding:"required,min=1"`
	Count           int          `json:"count" binding:"required,min=1,max=10"`
	GradeLevel      string       `json:"gradeLevel" binding:"required"`
	RigorLevel      int          `json:"rigorLevel" binding:"omitempty,min=1,max=4"`
	GeneratedTextID uint         `json:"generatedTextId"`
}
