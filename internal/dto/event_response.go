package dto

type EventRequest struct {
	FilePath string `json:"file_path"`
}

type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// ActivityBucket covers a run of consecutive events starting at event index Start.
type ActivityBucket struct {
	Start  int `json:"start"`
	Count  int `json:"count"`
	Errors int `json:"errors"`
}

type EventSummaryResponse struct {
	TotalLines  int              `json:"total_lines"`
	TotalEvents int              `json:"total_events"`
	ErrorEvents int              `json:"error_events"`
	Levels      []LevelCount     `json:"levels"`
	Activity    []ActivityBucket `json:"activity"`
}
