package restviews

// GridData exposes the grid template data to external tests.
type GridData = gridData
