package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStemAndInstruction(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		wantStem        string
		wantInstruction string
	}{
		{
			name:            "completes the text",
			text:            "Her tone was ______ throughout. Which choice completes the text with the most logical and precise word or phrase?",
			wantStem:        "Her tone was ______ throughout.",
			wantInstruction: "Which choice completes the text with the most logical and precise word or phrase?",
		},
		{
			name:            "as used in the text",
			text:            "She had a keen eye. As used in the text, what does \"keen\" most nearly mean?",
			wantStem:        "She had a keen eye.",
			wantInstruction: "As used in the text, what does \"keen\" most nearly mean?",
		},
		{
			name:            "best describes",
			text:            "The cat was quiet. Which choice best describes the cat's mood?",
			wantStem:        "The cat was quiet.",
			wantInstruction: "Which choice best describes the cat's mood?",
		},
		{
			name:            "earlier pattern wins over later one",
			text:            "What does \"terse\" most nearly mean? Which choice best describes the reply?",
			wantStem:        "What does \"terse\" most nearly mean?",
			wantInstruction: "Which choice best describes the reply?",
		},
		{
			name:            "generic which choice at end",
			text:            "The author hedges. Which choice states the main claim?",
			wantStem:        "The author hedges.",
			wantInstruction: "Which choice states the main claim?",
		},
		{
			name:            "last sentence question fallback",
			text:            "He left early! Nobody noticed. Why did he go?",
			wantStem:        "He left early! Nobody noticed.",
			wantInstruction: "Why did he go?",
		},
		{
			name:            "generic pattern needs question mark at end",
			text:            "Which choice is right? Explain.",
			wantStem:        "Which choice is right? Explain.",
			wantInstruction: "",
		},
		{
			name:            "single question sentence",
			text:            "Why?",
			wantStem:        "Why?",
			wantInstruction: "",
		},
		{
			name:            "no question at all",
			text:            "Just a statement. Another one.",
			wantStem:        "Just a statement. Another one.",
			wantInstruction: "",
		},
		{
			name:            "instruction only",
			text:            "Which choice completes the text with the most logical and precise word or phrase?",
			wantStem:        "",
			wantInstruction: "Which choice completes the text with the most logical and precise word or phrase?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, instruction := SplitStemAndInstruction(tt.text)
			assert.Equal(t, tt.wantStem, stem)
			assert.Equal(t, tt.wantInstruction, instruction)
		})
	}
}

func TestSplitSentences(t *testing.T) {
	assert.Equal(t, []string{"One.", "Two!", "Three?"}, splitSentences("One.  Two! Three?"))
	assert.Equal(t, []string{"No break here"}, splitSentences("No break here"))
	assert.Equal(t, []string{"3.5 is a number."}, splitSentences("3.5 is a number."))
}

func TestLex(t *testing.T) {
	tests := []struct {
		line   string
		kind   eventKind
		id     string
		letter string
		choice string
	}{
		{line: "   ", kind: eventBlank},
		{line: "You said:", kind: eventNoise},
		{line: "Question ID 9f8e", kind: eventBlockStart, id: "9f8e"},
		{line: "ID: 9f8e", kind: eventIDLine, id: "9f8e"},
		{line: "ID:9f8e", kind: eventIDLine, id: ""},
		{line: "ID: 9f8e Answer", kind: eventAnswerSection},
		{line: "  B. loud  ", kind: eventChoice, letter: "B", choice: "loud"},
		{line: "C.—word", kind: eventChoice, letter: "C", choice: "word"},
		{line: "D.é", kind: eventChoice, letter: "D", choice: ""},
		{line: "A.", kind: eventChoice, letter: "A", choice: ""},
		{line: "E. not a choice", kind: eventText},
		{line: "Correct Answer:", kind: eventAnswerMarker},
		{line: "Rationale", kind: eventRationaleMarker},
		{line: "Question Difficulty:", kind: eventDifficultyMarker},
		{line: "Question Difficulty: Hard", kind: eventText},
		{line: "Rationale follows", kind: eventText},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			ev := lex(tt.line)
			assert.Equal(t, tt.kind.String(), ev.kind.String())
			assert.Equal(t, tt.id, ev.id)
			assert.Equal(t, tt.letter, ev.letter)
			assert.Equal(t, tt.choice, ev.choice)
		})
	}
}

func TestLineEvent_StopsRationale(t *testing.T) {
	assert.True(t, lex("Question Difficulty: Hard").stopsRationale())
	assert.True(t, lex("Assessment").stopsRationale())
	assert.True(t, lex("Question ID 12").stopsRationale())
	assert.False(t, lex("Rationale").stopsRationale())
	assert.False(t, lex("Choice B is wrong.").stopsRationale())
}
