package service

import (
	"context"
	"rune-backend/internal/dto"
	"rune-backend/internal/metrics"
	"rune-backend/internal/model"
	"rune-backend/internal/parser"
	"rune-backend/internal/source"

	"github.com/rs/zerolog/log"
)

type EventService interface {
	// GetEvents never fails: when no source is readable it returns the placeholder dataset.
	GetEvents(ctx context.Context, path string) model.LogDataset
	GetSummary(ctx context.Context, path string) dto.EventSummaryResponse
}

type eventService struct {
	resolver   source.Resolver
	classifier parser.LogClassifier
	summarizer metrics.Summarizer
}

func NewEventService(
	resolver source.Resolver,
	classifier parser.LogClassifier,
	summarizer metrics.Summarizer,
) EventService {
	return &eventService{
		resolver:   resolver,
		classifier: classifier,
		summarizer: summarizer,
	}
}

func (s *eventService) GetEvents(ctx context.Context, path string) model.LogDataset {
	logger := log.Ctx(ctx)

	content, ok := s.resolver.Resolve(ctx, path)
	if !ok {
		logger.Warn().
			Str("requested_path", path).
			Strs("fallbacks", s.resolver.FallbackPaths()).
			Msg("Could not find any logs, returning placeholder dataset")
		return model.NewPlaceholderDataset()
	}

	dataset := s.classifier.Classify(content.Text)
	logger.Info().
		Str("requested_path", path).
		Str("source", content.Path).
		Bool("fallback", content.Fallback).
		Int("total_lines", dataset.TotalLines).
		Int("events", len(dataset.Events)).
		Msg("Classified log events")
	return dataset
}

func (s *eventService) GetSummary(ctx context.Context, path string) dto.EventSummaryResponse {
	return s.summarizer.Summarize(s.GetEvents(ctx, path))
}
