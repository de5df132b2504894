package prompt

import "litgen_backend/internal/model"

// FormatExample returns the literal JSON example appended to a question
// prompt so the model sees the exact shape expected back. Each example
// round-trips through the response resolver unchanged.
func FormatExample(questionType model.QuestionType) string {
	switch questionType {
	case model.MultipleChoice:
		return `{
  "questions": [
    {
      "id": "mc1",
      "type": "multiple-choice",
      "question": "What is the main idea of the passage?",
      "options": [
        { "id": "A", "text": "Option text", "isCorrect": false },
        { "id": "B", "text": "Option text", "isCorrect": false },
        { "id": "C", "text": "Option text", "isCorrect": true },
        { "id": "D", "text": "Option text", "isCorrect": false }
      ],
      "standardId": "The relevant standard ID",
      "explanation": "Explanation of why the answer is correct"
    }
  ]
}`

	case model.MultipleSelect:
		return `{
  "questions": [
    {
      "id": "ms1",
      "type": "multiple-select",
      "question": "Select TWO details from the passage that support the main idea.",
      "options": [
        { "id": "A", "text": "Option text", "isCorrect": true },
        { "id": "B", "text": "Option text", "isCorrect": false },
        { "id": "C", "text": "Option text", "isCorrect": false },
        { "id": "D", "text": "Option text", "isCorrect": false },
        { "id": "E", "text": "Option text", "isCorrect": true },
        { "id": "F", "text": "Option text", "isCorrect": false }
      ],
      "standardId": "The relevant standard ID",
      "explanation": "Explanation of why the answers are correct",
      "correctCount": 2
    }
  ]
}`

	case model.OpenResponse:
		return `{
  "questions": [
    {
      "id": "or1",
      "type": "open-response",
      "question": "Explain how the author develops the theme of...",
      "standardId": "The relevant standard ID",
      "sampleResponse": "A sample response that would receive full credit",
      "scoringGuidelines": "Guidelines for scoring student responses"
    }
  ]
}`

	case model.TwoPart:
		return `{
  "questions": [
    {
      "id": "tp1",
      "type": "two-part",
      "question": "This question has two parts. Answer Part A and then Part B.",
      "standardId": "The relevant standard ID",
      "explanation": "Explanation of why the answers are correct",
      "partA": {
        "question": "Part A: What is the main idea of paragraph 3?",
        "options": [
          { "id": "A", "text": "Option text", "isCorrect": false },
          { "id": "B", "text": "Option text", "isCorrect": true },
          { "id": "C", "text": "Option text", "isCorrect": false },
          { "id": "D", "text": "Option text", "isCorrect": false }
        ]
      },
      "partB": {
        "question": "Part B: Which detail from the text best supports your answer to Part A?",
        "options": [
          { "id": "A", "text": "Option text", "isCorrect": false },
          { "id": "B", "text": "Option text", "isCorrect": false },
          { "id": "C", "text": "Option text", "isCorrect": true },
          { "id": "D", "text": "Option text", "isCorrect": false }
        ],
        "isMultiSelect": false
      }
    }
  ]
}`
	}

	return `{
  "questions": []
}`
}
