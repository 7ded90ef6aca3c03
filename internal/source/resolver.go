package source

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var errInvalidUTF8 = errors.New("file is not valid UTF-8 text")

// Content is the full text of a resolved log source.
type Content struct {
	Path     string
	Text     string
	Fallback bool
}

type Resolver interface {
	// Resolve returns the first readable source: path if non-empty, then each
	// fallback in order. Read failures are logged and never returned.
	Resolve(ctx context.Context, path string) (*Content, bool)
	FallbackPaths() []string
}

type fileResolver struct {
	fs        afero.Fs
	fallbacks []string
}

func NewResolver(fs afero.Fs, fallbacks []string) Resolver {
	paths := make([]string, 0, len(fallbacks))
	for _, p := range fallbacks {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return &fileResolver{
		fs:        fs,
		fallbacks: paths,
	}
}

func NewOSResolver(fallbacks []string) Resolver {
	return NewResolver(afero.NewOsFs(), fallbacks)
}

func (r *fileResolver) Resolve(ctx context.Context, path string) (*Content, bool) {
	logger := log.Ctx(ctx)

	if path != "" {
		text, err := r.readText(path)
		if err == nil {
			return &Content{Path: path, Text: text}, true
		}
		logger.Warn().Err(err).Str("file", path).Msg("Failed to read supplied path, trying fallbacks")
	}

	for _, p := range r.fallbacks {
		exists, err := afero.Exists(r.fs, p)
		if err != nil || !exists {
			logger.Debug().Str("file", p).Msg("Fallback path not found")
			continue
		}
		text, err := r.readText(p)
		if err != nil {
			logger.Warn().Err(err).Str("file", p).Msg("Failed to read fallback path")
			continue
		}
		return &Content{Path: p, Text: text, Fallback: true}, true
	}

	return nil, false
}

func (r *fileResolver) FallbackPaths() []string {
	paths := make([]string, len(r.fallbacks))
	copy(paths, r.fallbacks)
	return paths
}

func (r *fileResolver) readText(path string) (string, error) {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to read %s: %w", path, errInvalidUTF8)
	}
	return string(data), nil
}
