package catalog

import "errors"

// ErrEmptyLibrary indicates a completed scan that found no entities.
var ErrEmptyLibrary = errors.New("no media found in library")
