package quiz

// Question is a bank record. CorrectIndex and Explanation are the answer key
// and must never reach a client before grading.
type Question struct {
	ID           int
	Text         string
	Options      []string
	CorrectIndex int
	Explanation  string
}

// PublicQuestion is the projection of a Question that is safe to expose.
type PublicQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuestionsResponse struct {
	Questions []PublicQuestion `json:"questions"`
}

// AnswerSubmission maps question id to the selected option index.
type AnswerSubmission map[int]int

type QuestionResult struct {
	ID            int    `json:"id"`
	Correct       bool   `json:"correct"`
	CorrectAnswer int    `json:"correct_answer"`
	Selected      *int   `json:"selected"`
	Explanation   string `json:"explanation"`
}

type GradeReport struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage int              `json:"percentage"`
	Results    []QuestionResult `json:"results"`
}
