package parser

import (
	"regexp"
	"strings"
)

// instructionPatterns are tried in order; the first one found anywhere in the
// stem marks where the instruction sentence starts.
var instructionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`Which choice completes the text with the most logical and precise word or phrase\?`),
	regexp.MustCompile(`As used in the text, what does.*most nearly mean\?`),
	regexp.MustCompile(`Which choice best describes.*\?`),
	regexp.MustCompile(`What does.*most nearly mean\?`),
	regexp.MustCompile(`Which choice.*\?$`),
}

var sentenceBreak = regexp.MustCompile(`[.!?]\s+`)

// SplitStemAndInstruction separates the trailing instruction sentence from the
// question stem. When nothing looks like an instruction the whole text is
// returned as the stem.
func SplitStemAndInstruction(fullText string) (stem, instruction string) {
	for _, pattern := range instructionPatterns {
		if loc := pattern.FindStringIndex(fullText); loc != nil {
			return strings.TrimSpace(fullText[:loc[0]]), strings.TrimSpace(fullText[loc[0]:])
		}
	}

	sentences := splitSentences(fullText)
	if len(sentences) > 1 {
		last := sentences[len(sentences)-1]
		if strings.Contains(last, "?") {
			return strings.TrimSpace(strings.Join(sentences[:len(sentences)-1], " ")), strings.TrimSpace(last)
		}
	}

	return fullText, ""
}

// splitSentences breaks text after ., ! or ? when followed by whitespace.
// The punctuation stays with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	for _, loc := range sentenceBreak.FindAllStringIndex(text, -1) {
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	return append(sentences, text[start:])
}
