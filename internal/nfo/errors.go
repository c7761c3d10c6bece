package nfo

import "errors"

// ErrMalformed indicates a descriptor that is not valid XML or lacks a
// usable structure. The scanner skips such files and continues.
var ErrMalformed = errors.New("malformed descriptor")
