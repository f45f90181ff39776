package mesh

import "errors"

var (
	ErrUnsupportedFormat = errors.New("mesh: unsupported file format")
	ErrUnsupportedScheme = errors.New("mesh: unsupported resource scheme")
	ErrMalformedFace     = errors.New("mesh: malformed face argument")
	ErrEmptyGeometry     = errors.New("mesh: no faces parsed")
)
