package parser

import (
	"rune-backend/internal/model"
	"strings"

	"github.com/rs/zerolog/log"
)

// minTokens is date, time and at least one token of content.
const minTokens = 3

type LogClassifier interface {
	Classify(content string) model.LogDataset
	ClassifyLine(line string, lineNumber int) (*model.LogEvent, bool)
}

type keywordClassifier struct {
	keywords model.KeywordSet
}

func NewKeywordClassifier(keywords model.KeywordSet) LogClassifier {
	kw := make(model.KeywordSet, len(keywords))
	copy(kw, keywords)
	return &keywordClassifier{keywords: kw}
}

func NewDefaultClassifier() LogClassifier {
	return NewKeywordClassifier(model.DefaultKeywords())
}

func (c *keywordClassifier) Classify(content string) model.LogDataset {
	lines := SplitLines(content)
	events := make([]model.LogEvent, 0)

	for i, line := range lines {
		event, ok := c.ClassifyLine(line, i+1)
		if !ok {
			continue
		}
		events = append(events, *event)
	}

	log.Debug().Int("total_lines", len(lines)).Int("events", len(events)).Msg("Classified log content")
	return model.LogDataset{
		TotalLines: len(lines),
		Events:     events,
	}
}

// ClassifyLine expects "<date> <time> <content...>". The keyword test runs on the whole
// raw line, the message is the content tokens joined by single spaces.
func (c *keywordClassifier) ClassifyLine(line string, lineNumber int) (*model.LogEvent, bool) {
	parts := strings.Fields(line)
	if len(parts) < minTokens {
		log.Trace().Int("line_number", lineNumber).Msg("Line too short, skipping")
		return nil, false
	}

	level, ok := c.keywords.Match(line)
	if !ok {
		return nil, false
	}

	return &model.LogEvent{
		LineNumber: lineNumber,
		Time:       parts[1],
		Level:      level,
		Message:    strings.Join(parts[2:], " "),
	}, true
}

// SplitLines splits on "\n" and drops a trailing "\r" from each line. A final line
// terminator does not start a new empty line, so "a\nb\n" has two lines.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
