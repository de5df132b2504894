package model

import "strings"

// Standard is a single curriculum requirement (e.g. RL.6.2), scoped to a
// grade and category. Standards are reference data: seeded at startup,
// read-only afterwards.
//
// swagger:model Standard
type Standard struct {
	ID          string `gorm:"primaryKey;size:50" json:"id"`
	Code        string `gorm:"size:20;not null;index" json:"code"`
	Description string `gorm:"type:text;not null" json:"description"`
	CategoryID  string `gorm:"size:50;not null;index" json:"categoryId"`
	GradeID     string `gorm:"size:5;not null;index" json:"gradeId"`
}

func (Standard) TableName() string {
	return "standards"
}

// AppliesToNarrative reports whether the standard targets literature
// (RL.*) rather than informational text (RI.*). Standards outside the
// two reading strands apply to both text types.
func (s Standard) AppliesToNarrative() bool {
	return !strings.HasPrefix(s.Code, "RI.")
}

// swagger:model StandardCategory
type StandardCategory struct {
	ID          string `gorm:"primaryKey;size:50" json:"id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Icon        string `gorm:"size:50;not null" json:"icon"`
	Color       string `gorm:"size:50;not null" json:"color"`
	GradeID     string `gorm:"size:5;not null;index" json:"gradeId"`

	// Populated for API responses, not a database column.
	Standards []Standard `gorm:"-" json:"standards"`
}

func (StandardCategory) TableName() string {
	return "standard_categories"
}
