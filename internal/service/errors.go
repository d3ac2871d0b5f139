package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrGridNotFound          = errors.New("grid not found")
	ErrInvalidGridDefinition = errors.New("invalid grid definition")

	ErrLoadSettings    = errors.New("error loading site settings")
	ErrSettingNotFound = errors.New("setting not found")
)
