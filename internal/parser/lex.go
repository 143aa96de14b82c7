package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Line markers used by the question dump format.
const (
	noiseMarker      = "You said:"
	blockStartPrefix = "Question ID"
	idPrefix         = "ID:"
	answerWord       = "Answer"
	answerMarker     = "Correct Answer:"
	rationaleMarker  = "Rationale"
	difficultyMarker = "Question Difficulty:"
	assessmentPrefix = "Assessment"
)

var choicePattern = regexp.MustCompile(`^[A-D]\.`)

// eventKind classifies a single trimmed line of the dump.
type eventKind int

const (
	eventBlank eventKind = iota
	eventNoise
	eventBlockStart
	eventIDLine
	eventAnswerSection
	eventChoice
	eventAnswerMarker
	eventRationaleMarker
	eventDifficultyMarker
	eventText
)

var eventKindNames = map[eventKind]string{
	eventBlank:            "blank",
	eventNoise:            "noise",
	eventBlockStart:       "block_start",
	eventIDLine:           "id_line",
	eventAnswerSection:    "answer_section",
	eventChoice:           "choice",
	eventAnswerMarker:     "answer_marker",
	eventRationaleMarker:  "rationale_marker",
	eventDifficultyMarker: "difficulty_marker",
	eventText:             "text",
}

func (k eventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// lineEvent is one classified line. text is always the trimmed line.
type lineEvent struct {
	kind   eventKind
	text   string
	id     string // eventBlockStart, eventIDLine
	letter string // eventChoice
	choice string // eventChoice
}

// stopsRationale reports whether the line ends a rationale paragraph.
func (e lineEvent) stopsRationale() bool {
	return strings.HasPrefix(e.text, difficultyMarker) ||
		strings.HasPrefix(e.text, assessmentPrefix) ||
		strings.HasPrefix(e.text, blockStartPrefix)
}

// lex classifies a raw line. Checks run in the same priority order the
// reducer applies them, so a line gets the first kind that fits.
func lex(raw string) lineEvent {
	line := strings.TrimSpace(raw)
	ev := lineEvent{kind: eventText, text: line}

	switch {
	case line == "":
		ev.kind = eventBlank
	case line == noiseMarker:
		ev.kind = eventNoise
	case strings.HasPrefix(line, blockStartPrefix):
		ev.kind = eventBlockStart
		ev.id = field(strings.Split(line, " "), 2)
	case strings.HasPrefix(line, idPrefix) && !strings.Contains(line, answerWord):
		ev.kind = eventIDLine
		ev.id = field(strings.Split(line, ": "), 1)
	case strings.Contains(line, idPrefix) && strings.Contains(line, answerWord):
		ev.kind = eventAnswerSection
	case choicePattern.MatchString(line):
		ev.kind = eventChoice
		ev.letter = line[:1]
		ev.choice = choiceText(line)
	case line == answerMarker:
		ev.kind = eventAnswerMarker
	case line == rationaleMarker:
		ev.kind = eventRationaleMarker
	case line == difficultyMarker:
		ev.kind = eventDifficultyMarker
	}
	return ev
}

// choiceText drops the "<Letter>." prefix and the one character after it,
// which is normally a space but may be any rune.
func choiceText(line string) string {
	rest := line[2:]
	_, size := utf8.DecodeRuneInString(rest)
	return strings.TrimSpace(rest[size:])
}

func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}
