package session

import "errors"

// ErrNotSaved is returned when a location that is not a member of the saved
// list is selected as current.
var ErrNotSaved = errors.New("location is not in the saved list")
