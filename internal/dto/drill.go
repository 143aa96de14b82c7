package dto

// ChoiceResponse is one answer option.
type ChoiceResponse struct {
	Letter string `json:"letter"`
	Text   string `json:"text"`
}

// QuestionResponse is the current question as shown while answering.
// The correct answer and rationale are withheld until the result is revealed.
type QuestionResponse struct {
	ID          string           `json:"id"`
	Question    string           `json:"question"`
	Instruction string           `json:"instruction,omitempty"`
	Difficulty  string           `json:"difficulty,omitempty"`
	Choices     []ChoiceResponse `json:"choices"`
}

// ResultResponse is shown once the answer has been submitted.
type ResultResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer"`
	Rationale     string `json:"rationale,omitempty"`
}

// ScoreResponse is the running tally.
type ScoreResponse struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// SessionResponse is the full view of a drill session after any operation.
type SessionResponse struct {
	SessionID string            `json:"session_id"`
	Available bool              `json:"available"`
	Index     int               `json:"index"`
	Total     int               `json:"total"`
	State     string            `json:"state"`
	Selected  string            `json:"selected,omitempty"`
	Score     ScoreResponse     `json:"score"`
	IsLast    bool              `json:"is_last"`
	Finished  bool              `json:"finished"`
	Question  *QuestionResponse `json:"question,omitempty"`
	Result    *ResultResponse   `json:"result,omitempty"`
}

// SelectAnswerRequest is the body of the select endpoint.
type SelectAnswerRequest struct {
	Letter string `json:"letter"`
}

// QuestionBankResponse summarizes the loaded question bank.
type QuestionBankResponse struct {
	Available bool   `json:"available"`
	Count     int    `json:"count"`
	Source    string `json:"source"`
}

// HealthResponse reports dependency status.
type HealthResponse struct {
	Status string `json:"status"`
	Cache  string `json:"cache"`
}
