package restviews

import "errors"

var (
	ErrInvalidGridName = errors.New("grid name must be a javascript identifier")
	ErrEmptyURL        = errors.New("grid url must not be empty")
	ErrInvalidUI       = errors.New("invalid RESTVIEWS_UI setting")
)
