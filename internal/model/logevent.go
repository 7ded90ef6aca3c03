package model

// LogEvent is a single log line that matched a severity keyword.
// LineNumber is 1-based; zero means the line number was not tracked.
type LogEvent struct {
	LineNumber int    `json:"line_number,omitempty"`
	Time       string `json:"time"`
	Level      string `json:"level"`
	Message    string `json:"message"`
}

// LogDataset is the result of one classification pass over a file.
type LogDataset struct {
	TotalLines int        `json:"total_lines"`
	Events     []LogEvent `json:"events"`
}

const (
	placeholderTotalLines = 2
	placeholderLevel      = "INFO"
)

// NewPlaceholderDataset returns the dataset shown when no log source could be read.
func NewPlaceholderDataset() LogDataset {
	return LogDataset{
		TotalLines: placeholderTotalLines,
		Events: []LogEvent{
			{LineNumber: 1, Time: "00:00:00", Level: placeholderLevel, Message: "No log file loaded."},
			{LineNumber: 2, Time: "00:00:01", Level: placeholderLevel, Message: "Click 'Open Log...' to select a file."},
		},
	}
}
