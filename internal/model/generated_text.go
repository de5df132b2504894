package model

import (
	"gorm.io/datatypes"
)

// GeneratedText is one generated reading passage together with its
// teacher notes. Records are immutable once created; "modify passage"
// produces new content client-side rather than rewriting a row.
//
// swagger:model GeneratedText
type GeneratedText struct {
	BaseModel
	Title        string                       `gorm:"size:255;not null" json:"title"`
	Content      string                       `gorm:"type:text;not null" json:"content"`
	TeacherNotes string                       `gorm:"type:text" json:"teacherNotes"`
	GradeID      string                       `gorm:"size:5;not null;index" json:"gradeId"`
	UserID       *uint                        `gorm:"index" json:"userId,omitempty"`
	StandardIDs  datatypes.JSONSlice[string]  `gorm:"not null" json:"standardIds"`
	ReadingLevel string                       `gorm:"size:10;not null" json:"readingLevel"`
	TextType     string                       `gorm:"size:20;not null" json:"textType"`
}

func (GeneratedText) TableName() string {
	return "generated_texts"
}

// GeneratedQuestionSet is one batch of questions produced by a single
// generation call, appended to the owning text's collection. Sets are
// never mutated, only appended or replaced wholesale by regeneration.
//
// swagger:model GeneratedQuestionSet
type GeneratedQuestionSet struct {
	BaseModel
	GeneratedTextID uint           `gorm:"index;not null" json:"generatedTextId"`
	QuestionType    string         `gorm:"size:20;not null" json:"questionType"`
	QuestionData    datatypes.JSON `gorm:"not null" json:"questionData"`
}

func (GeneratedQuestionSet) TableName() string {
	return "generated_question_sets"
}
