package domain

import "errors"

var (
	ErrMissingArtifact = errors.New("model artifact missing")
	ErrInvalidArtifact = errors.New("model artifact invalid")
	ErrTextTooShort    = errors.New("text too short")
)
