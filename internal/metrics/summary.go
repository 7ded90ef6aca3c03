package metrics

import (
	"rune-backend/internal/dto"
	"rune-backend/internal/model"

	"github.com/rs/zerolog/log"
)

const maxActivityBuckets = 20

type Summarizer interface {
	Summarize(dataset model.LogDataset) dto.EventSummaryResponse
}

type levelSummarizer struct {
	errorLevels map[string]bool
	// bucket errors only count exact ERROR events
	bucketErrorLevel string
}

func NewLevelSummarizer() Summarizer {
	return &levelSummarizer{
		errorLevels:      map[string]bool{"ERROR": true, "ERR": true},
		bucketErrorLevel: "ERROR",
	}
}

func (s *levelSummarizer) Summarize(dataset model.LogDataset) dto.EventSummaryResponse {
	events := dataset.Events
	resp := dto.EventSummaryResponse{
		TotalLines:  dataset.TotalLines,
		TotalEvents: len(events),
		Levels:      make([]dto.LevelCount, 0),
		Activity:    make([]dto.ActivityBucket, 0),
	}

	levelIndex := make(map[string]int)
	for _, event := range events {
		if s.errorLevels[event.Level] {
			resp.ErrorEvents++
		}
		idx, ok := levelIndex[event.Level]
		if !ok {
			idx = len(resp.Levels)
			levelIndex[event.Level] = idx
			resp.Levels = append(resp.Levels, dto.LevelCount{Level: event.Level})
		}
		resp.Levels[idx].Count++
	}

	if len(events) > 0 {
		resp.Activity = s.activity(events)
	}

	log.Debug().Int("events", resp.TotalEvents).Int("errors", resp.ErrorEvents).Int("buckets", len(resp.Activity)).Msg("Summarized log events")
	return resp
}

// activity splits events into at most maxActivityBuckets runs of equal size, the last one possibly shorter.
func (s *levelSummarizer) activity(events []model.LogEvent) []dto.ActivityBucket {
	buckets := make([]dto.ActivityBucket, 0, maxActivityBuckets)
	bucketSize := (len(events) + maxActivityBuckets - 1) / maxActivityBuckets
	for start := 0; start < len(events); start += bucketSize {
		end := start + bucketSize
		if end > len(events) {
			end = len(events)
		}
		bucket := dto.ActivityBucket{Start: start, Count: end - start}
		for _, event := range events[start:end] {
			if event.Level == s.bucketErrorLevel {
				bucket.Errors++
			}
		}
		buckets = append(buckets, bucket)
	}
	return buckets
}
