// Package prompt renders the natural-language instructions sent to the
// language model. Everything here is a pure string transform over a
// validated request plus resolved standards, so the templates can be
// unit-tested without a network.
package prompt

import (
	"fmt"
	"strings"

	"litgen_backend/internal/model"
)

// FormatStandards renders standards one per line as "CODE: description",
// the form every template embeds.
func FormatStandards(standards []model.Standard) string {
	lines := make([]string, 0, len(standards))
	for _, s := range standards {
		lines = append(lines, fmt.Sprintf("%s: %s", s.Code, s.Description))
	}
	return strings.Join(lines, "\n")
}

// paragraphContract is the formatting block shared by both passage
// templates. The tab-after-number layout is what the client renderer
// and the exporter both key on.
const paragraphContract = `IMPORTANT FORMATTING REQUIREMENTS:
- Each paragraph must be numbered, starting with "1" for the first paragraph
- Each numbered paragraph should be indented after the number
- Follow this exact format for each paragraph: "[Number]\t[Paragraph text]"
- Start a new paragraph with a new number for each main idea or scene change
- Include any necessary footnotes at the end if special terms need explanation

Please format your response as a JSON object with title and content fields, like this:
{
  "title": "The title of the passage",
  "content": "1\tFirst paragraph text goes here, properly indented after the number...\n\n2\tSecond paragraph text goes here..."
}`

// Passage renders the passage-generation instruction. A request with
// CustomContext set is a modification of an existing passage; otherwise
// a new passage is generated from scratch.
func Passage(req model.GenerateTextRequest, standards []model.Standard) string {
	if req.CustomContext != "" {
		return fmt.Sprintf(`Modify an existing educational text passage according to specific instructions while maintaining alignment with these English Language Arts standards:

%s

%s

%s`, FormatStandards(standards), req.CustomContext, paragraphContract)
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Generate an educational text passage for grade %s students that aligns with the following English Language Arts standards:

%s

The passage should be:
`, req.GradeID, FormatStandards(standards))

	if req.TextType == "narrative" {
		b.WriteString("- A narrative text (story)\n")
	} else {
		b.WriteString("- An informational text (non-fiction)\n")
	}
	if req.Topic != "" {
		fmt.Fprintf(&b, "- About the topic: %q\n", req.Topic)
	}
	fmt.Fprintf(&b, "- Approximately %s words in length\n", req.WordCount)
	fmt.Fprintf(&b, "- At a reading level that is %s grade %s level\n", readingLevelPhrase(req.ReadingLevel), req.GradeID)
	b.WriteString("- Age-appropriate and engaging for students\n")
	b.WriteString("- Clearly demonstrating the listed standards\n")
	if req.Topic != "" {
		b.WriteString("- Include a title for the passage that relates to the given topic\n")
	} else {
		b.WriteString("- Include a title for the passage\n")
	}

	b.WriteString("\n")
	b.WriteString(paragraphContract)
	return b.String()
}

func readingLevelPhrase(level string) string {
	switch level {
	case "below":
		return "slightly below"
	case "above":
		return "slightly above"
	default:
		return "at"
	}
}

// TeacherNotes renders the instruction for the follow-up teacher-notes
// call made after a passage is generated.
func TeacherNotes(standards []model.Standard, passage string) string {
	return fmt.Sprintf(`Based on the following passage and ELA standards, create detailed teacher notes.

PASSAGE:
"""
%s
"""

STANDARDS:
%s

The teacher notes should include:
1. Key concepts and vocabulary in the passage
2. How the passage aligns with each standard
3. Suggested discussion questions
4. Potential challenges students might face with the content
5. Additional teaching tips or extension activities

Format your response as a JSON object with a notes field, like this:
{
  "notes": "The full text of the teacher notes..."
}`, passage, FormatStandards(standards))
}

// Questions renders the assessment-question instruction. The body
// varies by question type and rigor level; a literal JSON example of
// the requested shape is appended so the model's output is
// self-describing.
func Questions(req model.GenerateQuestionsRequest, standards []model.Standard) string {
	rigor := req.RigorLevel
	if rigor == 0 {
		rigor = 2
	}

	return fmt.Sprintf(`Based on the following passage for grade %s students, generate assessment questions.

PASSAGE:
"""
%s
"""

STANDARDS TO COVER:
%s

QUESTION RIGOR LEVEL: %d out of 4
%s

%s

Format your response as a JSON array with the following structure:
%s`, req.GradeLevel, req.Passage, FormatStandards(standards), rigor, rigorClause(rigor), formatInstructions(req.QuestionType, req.Count), FormatExample(req.QuestionType))
}

// rigorClause maps the 1-4 rigor scale onto DOK-style framing, recall
// through synthesis.
func rigorClause(rigor int) string {
	switch rigor {
	case 1:
		return "These should be basic recall and understanding questions at DOK level 1, focusing on identifying explicitly stated information in the text."
	case 3:
		return "These should be analysis and evaluation questions at DOK level 3, requiring students to draw conclusions and make inferences from the text."
	case 4:
		return "These should be synthesis and extended thinking questions at DOK level 4, requiring students to connect ideas across texts or apply concepts in new contexts."
	default:
		return "These should be application and analysis questions at DOK level 2, requiring students to interpret information from the text."
	}
}

func formatInstructions(questionType model.QuestionType, count int) string {
	switch questionType {
	case model.MultipleChoice:
		return fmt.Sprintf(`Generate %d multiple-choice questions based on the passage.
- Each question should have 4 options (A, B, C, D)
- Only one option should be correct
- Include which standard each question aligns with
- Provide a brief explanation for the correct answer`, count)

	case model.MultipleSelect:
		return fmt.Sprintf(`Generate %d multiple-select questions where students must select multiple correct answers.
- Each question should have 6 options (A, B, C, D, E, F)
- Exactly 2 options should be correct for each question
- Include which standard each question aligns with
- Provide a brief explanation for why the correct answers are right`, count)

	case model.OpenResponse:
		return fmt.Sprintf(`Generate %d open-response (constructed response) questions.
- Each question should require students to write a paragraph or more
- Include which standard each question aligns with
- Provide a sample response that would earn full credit
- Include scoring guidelines for teachers`, count)

	case model.TwoPart:
		return fmt.Sprintf(`Generate %d two-part questions following the state test format.
- Each question should have an overall context/prompt
- Part A should be a multiple-choice question with 4 options (A, B, C, D) and only one correct answer
- Part B should be a follow-up question that builds on Part A
- For rigor levels 1-2: Part B should be multiple-choice with 4 options
- For rigor levels 3-4: Part B should be multiple-select with 6 options (A, B, C, D, E, F) and exactly 2 correct answers
- Include which standard each question aligns with
- Provide a brief explanation for the correct answers`, count)
	}

	return ""
}
