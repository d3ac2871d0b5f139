package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/restviews"
	"github.com/MKhiriev/go-restviews/internal/settings"
	"github.com/MKhiriev/go-restviews/models"
)

const gridURLKey = "url"

type gridService struct {
	live settings.Reader
	tags GridTags

	logger *logger.Logger
}

func NewGridService(live settings.Reader, tags GridTags, logger *logger.Logger) GridService {
	return &gridService{
		live:   live,
		tags:   tags,
		logger: logger,
	}
}

// ListGrids returns the declared grids sorted by name. Entries without a
// URL are skipped.
func (s *gridService) ListGrids(ctx context.Context) ([]models.GridSummary, error) {
	grids := s.declaredGrids()

	summaries := make([]models.GridSummary, 0, len(grids))
	for _, name := range grids.Keys() {
		url, _, err := gridDefinition(grids, name)
		if err != nil {
			s.logger.Warn().Err(err).Str("grid", name).Msg("skipping grid")
			continue
		}

		summaries = append(summaries, models.GridSummary{Name: name, URL: url})
	}

	return summaries, nil
}

func (s *gridService) RenderGrid(ctx context.Context, name string) (models.GridPage, error) {
	url, opts, err := gridDefinition(s.declaredGrids(), name)
	if err != nil {
		return models.GridPage{}, err
	}

	head, err := s.tags.Head()
	if err != nil {
		return models.GridPage{}, fmt.Errorf("error rendering head: %w", err)
	}

	grid, err := s.tags.Grid(name, url, opts)
	if errors.Is(err, restviews.ErrInvalidGridName) {
		return models.GridPage{}, fmt.Errorf("%w %q: %w", ErrInvalidGridDefinition, name, err)
	}
	if err != nil {
		return models.GridPage{}, fmt.Errorf("error rendering grid %q: %w", name, err)
	}

	s.logger.Debug().Str("grid", name).Str("url", url).Msg("grid rendered")

	return models.GridPage{
		Name: name,
		URL:  url,
		Head: head,
		Grid: grid,
	}, nil
}

func (s *gridService) declaredGrids() settings.Tree {
	v, ok := s.live.Get(restviews.SettingGrids)
	if !ok {
		return settings.Tree{}
	}

	grids, ok := settings.AsTree(v)
	if !ok {
		s.logger.Warn().Msgf("%s is not a mapping", restviews.SettingGrids)
		return settings.Tree{}
	}

	return grids
}

// gridDefinition splits a declared grid into its endpoint and its options.
func gridDefinition(grids settings.Tree, name string) (string, restviews.Options, error) {
	v, ok := grids[name]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrGridNotFound, name)
	}

	entry, ok := settings.AsTree(v)
	if !ok {
		return "", nil, fmt.Errorf("%w %q: not a mapping", ErrInvalidGridDefinition, name)
	}

	url, _ := entry[gridURLKey].(string)
	if url == "" {
		return "", nil, fmt.Errorf("%w %q: missing %s", ErrInvalidGridDefinition, name, gridURLKey)
	}

	opts := make(restviews.Options, len(entry))
	for key, value := range entry {
		if key != gridURLKey {
			opts[key] = value
		}
	}

	return url, opts, nil
}
