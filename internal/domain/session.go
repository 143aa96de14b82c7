package domain

// MaxSessionQuestions caps how many questions a single drill session walks through.
const MaxSessionQuestions = 20

// SessionState is the position of the current question in its attempt cycle.
type SessionState string

const (
	StateAnswering SessionState = "answering"
	StateRevealed  SessionState = "revealed"
)

// Score is the running tally of submitted answers.
type Score struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Session is the quiz state machine for one drill run.
// It is not safe for concurrent use; callers own it exclusively.
//
// Out-of-order calls (submitting twice, selecting after reveal, advancing
// past the last question) are no-ops rather than errors.
type Session struct {
	questions []Question
	index     int
	selected  string
	revealed  bool
	score     Score
}

// NewSession creates a session over questions. Only the first
// MaxSessionQuestions entries are kept; the slice is copied.
func NewSession(questions []Question) *Session {
	if len(questions) > MaxSessionQuestions {
		questions = questions[:MaxSessionQuestions]
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Session{questions: qs}
}

// Questions returns the question list the session was created with.
func (s *Session) Questions() []Question {
	return s.questions
}

// Len is the number of questions in the session.
func (s *Session) Len() int {
	return len(s.questions)
}

// Empty reports the "no questions available" state.
func (s *Session) Empty() bool {
	return len(s.questions) == 0
}

// Index returns the zero-based position of the current question.
func (s *Session) Index() int {
	return s.index
}

// Current returns the question being answered, or false when the session is empty.
func (s *Session) Current() (Question, bool) {
	if s.Empty() {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Selected returns the selected letter, or "" when nothing is selected.
func (s *Session) Selected() string {
	return s.selected
}

// State returns the current attempt state.
func (s *Session) State() SessionState {
	if s.revealed {
		return StateRevealed
	}
	return StateAnswering
}

// Revealed reports whether the result of the current question is shown.
func (s *Session) Revealed() bool {
	return s.revealed
}

// Score returns the running score.
func (s *Session) Score() Score {
	return s.score
}

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool {
	return !s.Empty() && s.index == len(s.questions)-1
}

// Finished reports whether the last question has been answered and revealed.
func (s *Session) Finished() bool {
	return s.revealed && s.IsLast()
}

// LastCorrect reports whether the revealed answer was right. It is false
// while the current question is still being answered.
func (s *Session) LastCorrect() bool {
	if !s.revealed {
		return false
	}
	q, ok := s.Current()
	return ok && q.IsCorrect(s.selected)
}

// Select records letter as the chosen answer, replacing any earlier choice.
func (s *Session) Select(letter string) {
	if s.revealed || s.Empty() {
		return
	}
	s.selected = letter
}

// Submit scores the selected answer and reveals the result.
// It returns true when the submission was accepted.
func (s *Session) Submit() bool {
	if s.selected == "" || s.revealed || s.Empty() {
		return false
	}
	s.score.Total++
	if s.questions[s.index].IsCorrect(s.selected) {
		s.score.Correct++
	}
	s.revealed = true
	return true
}

// Next moves to the following question once the current one is revealed.
// It returns true when the session advanced.
func (s *Session) Next() bool {
	if !s.revealed || s.index >= len(s.questions)-1 {
		return false
	}
	s.index++
	s.selected = ""
	s.revealed = false
	return true
}

// Restart rewinds to the first question and clears the score.
func (s *Session) Restart() {
	s.index = 0
	s.selected = ""
	s.revealed = false
	s.score = Score{}
}
