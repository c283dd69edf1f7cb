package voxelcore

import "errors"

// ErrOutOfRange is the sentinel behind every bounds failure in the engine:
// a BitArray position/word index beyond its backing length, or a caller
// supplied index-buffer whose length doesn't match the expected count.
// Wrap it with fmt.Errorf("...: %w", ErrOutOfRange) to add the offending
// value; callers that only care about the kind should use errors.Is.
var ErrOutOfRange = errors.New("voxelcore: out of range")
