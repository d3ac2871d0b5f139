package service

import (
	"context"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-restviews/internal/logger"
	"github.com/MKhiriev/go-restviews/internal/mock"
	"github.com/MKhiriev/go-restviews/internal/restviews"
	"github.com/MKhiriev/go-restviews/internal/settings"
	"github.com/MKhiriev/go-restviews/models"
)

func gridsStore(grids any) *settings.MapStore {
	return settings.NewMapStore(settings.Tree{restviews.SettingGrids: grids})
}

// ─────────────────────────────────────────────
// ListGrids
// ─────────────────────────────────────────────

func TestGridService_ListGrids(t *testing.T) {
	live := gridsStore(settings.Tree{
		"orders":  settings.Tree{"url": "/api/orders/"},
		"books":   map[string]any{"url": "/api/books/", "itemsPerPage": 5},
		"broken":  settings.Tree{"itemsPerPage": 5},
		"garbage": "not a mapping",
	})

	svc := NewGridService(live, nil, logger.Nop())

	got, err := svc.ListGrids(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.GridSummary{
		{Name: "books", URL: "/api/books/"},
		{Name: "orders", URL: "/api/orders/"},
	}, got)
}

func TestGridService_ListGrids_NoneDeclared(t *testing.T) {
	svc := NewGridService(settings.NewMapStore(nil), nil, logger.Nop())

	got, err := svc.ListGrids(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGridService_ListGrids_NotAMapping(t *testing.T) {
	svc := NewGridService(gridsStore([]any{"books"}), nil, logger.Nop())

	got, err := svc.ListGrids(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ─────────────────────────────────────────────
// RenderGrid
// ─────────────────────────────────────────────

func TestGridService_RenderGrid(t *testing.T) {
	ctrl := gomock.NewController(t)
	tags := mock.NewMockGridTags(ctrl)

	live := gridsStore(settings.Tree{
		"books": settings.Tree{"url": "/api/books/", "itemsPerPage": 5},
	})

	tags.EXPECT().Head().Return(template.HTML("<head-tags>"), nil)
	tags.EXPECT().
		Grid("books", "/api/books/", restviews.Options{"itemsPerPage": 5}).
		Return(template.HTML("<grid-tags>"), nil)

	page, err := NewGridService(live, tags, logger.Nop()).RenderGrid(context.Background(), "books")
	require.NoError(t, err)
	assert.Equal(t, models.GridPage{
		Name: "books",
		URL:  "/api/books/",
		Head: "<head-tags>",
		Grid: "<grid-tags>",
	}, page)
}

func TestGridService_RenderGrid_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	tags := mock.NewMockGridTags(ctrl)

	_, err := NewGridService(gridsStore(settings.Tree{}), tags, logger.Nop()).
		RenderGrid(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrGridNotFound)
}

func TestGridService_RenderGrid_InvalidDefinition(t *testing.T) {
	tests := []struct {
		name  string
		entry any
	}{
		{name: "scalar", entry: "/api/books/"},
		{name: "no url", entry: settings.Tree{"itemsPerPage": 5}},
		{name: "url not a string", entry: settings.Tree{"url": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tags := mock.NewMockGridTags(ctrl)

			_, err := NewGridService(gridsStore(settings.Tree{"books": tt.entry}), tags, logger.Nop()).
				RenderGrid(context.Background(), "books")
			assert.ErrorIs(t, err, ErrInvalidGridDefinition)
		})
	}
}

func TestGridService_RenderGrid_InvalidGridName(t *testing.T) {
	ctrl := gomock.NewController(t)
	tags := mock.NewMockGridTags(ctrl)

	tags.EXPECT().Head().Return(template.HTML(""), nil)
	tags.EXPECT().Grid("my-grid", "/api/", gomock.Any()).Return(template.HTML(""), restviews.ErrInvalidGridName)

	_, err := NewGridService(gridsStore(settings.Tree{"my-grid": settings.Tree{"url": "/api/"}}), tags, logger.Nop()).
		RenderGrid(context.Background(), "my-grid")
	assert.ErrorIs(t, err, ErrInvalidGridDefinition)
	assert.ErrorIs(t, err, restviews.ErrInvalidGridName)
}

func TestGridService_RenderGrid_HeadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	tags := mock.NewMockGridTags(ctrl)

	tags.EXPECT().Head().Return(template.HTML(""), restviews.ErrInvalidUI)

	_, err := NewGridService(gridsStore(settings.Tree{"g": settings.Tree{"url": "/api/"}}), tags, logger.Nop()).
		RenderGrid(context.Background(), "g")
	assert.ErrorIs(t, err, restviews.ErrInvalidUI)
	assert.NotErrorIs(t, err, ErrInvalidGridDefinition)
}
