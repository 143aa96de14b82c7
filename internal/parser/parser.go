// Package parser turns a plaintext vocabulary question dump into structured
// multiple-choice questions.
//
// The dump has no formal grammar. Each line is classified into a typed event
// (see lex.go) and the events are folded into question records by a small
// state machine. Records missing an id, a stem or choices are dropped.
package parser

import (
	"strings"

	"vocab-drills/internal/domain"
)

// MaxQuestions is the default number of questions Parse returns.
const MaxQuestions = domain.MaxSessionQuestions

// readMode is the reducer's current reading state.
type readMode int

const (
	modeIdle readMode = iota
	modeStem
	modeChoices
	modeRationale
)

// pendingValue marks a field that takes the next raw line as its value.
type pendingValue int

const (
	pendingNone pendingValue = iota
	pendingAnswer
	pendingDifficulty
)

// record accumulates one question block.
type record struct {
	id            string
	stem          strings.Builder
	choices       []domain.Choice
	correctAnswer string
	rationale     string
	difficulty    string
}

func (r *record) complete() bool {
	return r.id != "" && r.stem.Len() > 0 && len(r.choices) > 0
}

func (r *record) question() domain.Question {
	text, instruction := SplitStemAndInstruction(strings.TrimSpace(r.stem.String()))
	return domain.Question{
		ID:            r.id,
		Text:          text,
		Instruction:   instruction,
		Choices:       r.choices,
		CorrectAnswer: r.correctAnswer,
		Rationale:     r.rationale,
		Difficulty:    r.difficulty,
	}
}

type reducer struct {
	limit     int
	out       []domain.Question
	cur       record
	mode      readMode
	pending   pendingValue
	rationale []string
}

// Parse parses raw and returns at most MaxQuestions questions in document order.
func Parse(raw string) []domain.Question {
	return ParseWithLimit(raw, MaxQuestions)
}

// ParseWithLimit is Parse with an explicit cap. A limit <= 0 returns every
// well-formed question.
func ParseWithLimit(raw string, limit int) []domain.Question {
	r := &reducer{limit: limit}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		r.step(lex(line), i+1 < len(lines))
	}
	r.finish()
	if r.out == nil {
		return []domain.Question{}
	}
	return r.out
}

// step folds one event into the reducer state. hasNext is false for the
// final line of input; markers that read ahead are ignored there.
func (r *reducer) step(ev lineEvent, hasNext bool) {
	switch r.pending {
	case pendingAnswer:
		r.cur.correctAnswer = ev.text
	case pendingDifficulty:
		r.cur.difficulty = ev.text
	}
	r.pending = pendingNone

	if r.mode == modeRationale {
		if !ev.stopsRationale() {
			if ev.text != "" {
				r.rationale = append(r.rationale, ev.text)
			}
			return
		}
		r.endRationale()
	}

	switch ev.kind {
	case eventBlank, eventNoise:
		return
	case eventBlockStart:
		r.flush()
		r.cur = record{id: ev.id}
		r.mode = modeIdle
		return
	case eventIDLine:
		r.cur.id = ev.id
		r.mode = modeStem
		return
	case eventAnswerSection:
		r.mode = modeIdle
		return
	}

	if r.mode == modeStem && ev.kind != eventChoice {
		r.cur.stem.WriteString(ev.text)
		r.cur.stem.WriteByte(' ')
		return
	}

	switch ev.kind {
	case eventChoice:
		r.mode = modeChoices
		r.cur.choices = append(r.cur.choices, domain.Choice{Letter: ev.letter, Text: ev.choice})
	case eventAnswerMarker:
		if hasNext {
			r.pending = pendingAnswer
		}
	case eventDifficultyMarker:
		if hasNext {
			r.pending = pendingDifficulty
		}
	case eventRationaleMarker:
		if hasNext {
			r.mode = modeRationale
			r.rationale = r.rationale[:0]
		}
	}
}

func (r *reducer) endRationale() {
	r.cur.rationale = strings.TrimSpace(strings.Join(r.rationale, " "))
	r.rationale = r.rationale[:0]
	r.mode = modeIdle
}

// flush emits the in-progress record when it is well formed.
func (r *reducer) flush() {
	if !r.cur.complete() {
		return
	}
	if r.limit > 0 && len(r.out) >= r.limit {
		return
	}
	r.out = append(r.out, r.cur.question())
}

func (r *reducer) finish() {
	if r.mode == modeRationale {
		r.endRationale()
	}
	r.flush()
}
