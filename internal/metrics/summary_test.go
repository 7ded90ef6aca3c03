package metrics_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rune-backend/internal/dto"
	"rune-backend/internal/metrics"
	"rune-backend/internal/model"
)

func eventsWithLevels(levels ...string) []model.LogEvent {
	events := make([]model.LogEvent, len(levels))
	for i, level := range levels {
		events[i] = model.LogEvent{
			LineNumber: i + 1,
			Time:       fmt.Sprintf("10:00:%02d", i%60),
			Level:      level,
			Message:    level + " message",
		}
	}
	return events
}

func TestLevelSummarizer_Placeholder(t *testing.T) {
	summary := metrics.NewLevelSummarizer().Summarize(model.NewPlaceholderDataset())

	assert.Equal(t, 2, summary.TotalLines)
	assert.Equal(t, 2, summary.TotalEvents)
	assert.Equal(t, 0, summary.ErrorEvents)
	assert.Equal(t, []dto.LevelCount{{Level: "INFO", Count: 2}}, summary.Levels)
	// ceil(2/20) = 1 event per bucket
	assert.Equal(t, []dto.ActivityBucket{{Start: 0, Count: 1, Errors: 0}, {Start: 1, Count: 1, Errors: 0}}, summary.Activity)
}

func TestLevelSummarizer_LevelsInFirstSeenOrder(t *testing.T) {
	dataset := model.LogDataset{
		TotalLines: 10,
		Events:     eventsWithLevels("Warning", "ERR", "ERROR", "Warning", "ERROR", "MEDIA_TIMEOUT"),
	}

	summary := metrics.NewLevelSummarizer().Summarize(dataset)

	assert.Equal(t, 10, summary.TotalLines)
	assert.Equal(t, 6, summary.TotalEvents)
	assert.Equal(t, 3, summary.ErrorEvents)
	assert.Equal(t, []dto.LevelCount{
		{Level: "Warning", Count: 2},
		{Level: "ERR", Count: 1},
		{Level: "ERROR", Count: 2},
		{Level: "MEDIA_TIMEOUT", Count: 1},
	}, summary.Levels)
}

func TestLevelSummarizer_ActivityBuckets(t *testing.T) {
	tests := []struct {
		name            string
		eventCount      int
		expectedBuckets int
		expectedSize    int
	}{
		{name: "No Events", eventCount: 0, expectedBuckets: 0},
		{name: "One Event", eventCount: 1, expectedBuckets: 1, expectedSize: 1},
		{name: "Exactly Twenty", eventCount: 20, expectedBuckets: 20, expectedSize: 1},
		{name: "Twenty One", eventCount: 21, expectedBuckets: 11, expectedSize: 2},
		{name: "Hundred", eventCount: 100, expectedBuckets: 20, expectedSize: 5},
		{name: "Uneven Tail", eventCount: 45, expectedBuckets: 15, expectedSize: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels := make([]string, tt.eventCount)
			for i := range levels {
				levels[i] = "ERROR"
				if i%2 == 1 {
					levels[i] = "ERR"
				}
			}
			dataset := model.LogDataset{TotalLines: tt.eventCount, Events: eventsWithLevels(levels...)}

			summary := metrics.NewLevelSummarizer().Summarize(dataset)

			require.Len(t, summary.Activity, tt.expectedBuckets)
			covered := 0
			bucketErrors := 0
			for _, bucket := range summary.Activity {
				assert.Equal(t, covered, bucket.Start)
				assert.LessOrEqual(t, bucket.Count, tt.expectedSize)
				covered += bucket.Count
				bucketErrors += bucket.Errors
			}
			assert.Equal(t, tt.eventCount, covered)
			// ERR counts as an error event but not in activity buckets
			assert.Equal(t, (tt.eventCount+1)/2, bucketErrors)
			assert.Equal(t, tt.eventCount, summary.ErrorEvents)
		})
	}
}

func TestLevelSummarizer_EmptyDatasetHasEmptySlices(t *testing.T) {
	summary := metrics.NewLevelSummarizer().Summarize(model.LogDataset{})

	assert.NotNil(t, summary.Levels)
	assert.NotNil(t, summary.Activity)
	assert.Empty(t, summary.Levels)
	assert.Empty(t, summary.Activity)
}

func TestLevelSummarizer_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	metrics.NewLevelSummarizer().Summarize(model.LogDataset{TotalLines: 3, Events: eventsWithLevels("ERROR", "Warning")})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, float64(2), entry["events"])
	assert.Equal(t, float64(1), entry["errors"])
	assert.Equal(t, float64(1), entry["buckets"])
}
