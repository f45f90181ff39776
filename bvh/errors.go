package bvh

import "errors"

// ErrEmptyInput is returned by Build when there are no faces to build from,
// i.e. face_count == 0 or either the position or normal array is empty.
var ErrEmptyInput = errors.New("bvh: empty input")
