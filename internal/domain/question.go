package domain

// Choice is one lettered option of a multiple-choice question.
type Choice struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// Question represents one parsed vocabulary drill question.
// Values are treated as immutable once the parser has emitted them.
type Question struct {
	ID            string   `json:"id"`
	Text          string   `json:"question"`
	Instruction   string   `json:"instruction"`
	Choices       []Choice `json:"choices"`
	CorrectAnswer string   `json:"correct_answer"`
	Rationale     string   `json:"rationale"`
	Difficulty    string   `json:"difficulty"`
}

// IsCorrect reports whether letter matches the recorded answer.
func (q *Question) IsCorrect(letter string) bool {
	return letter == q.CorrectAnswer
}
