package scenefile

import (
	"errors"
	"fmt"
)

var ErrNoExistingVersion = errors.New("no existing version")

var ErrVersionOverflow = errors.New("no version above the highest existing one")

var ErrNoOpenScene = errors.New("no scene is currently open")

// ParseError is returned when a path does not follow the
// {descriptor}_v{version}.{extension} naming grammar.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Could not parse scene file name '%s': %s", e.Path, e.Reason)
}

type InvalidFieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("Invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// MissingDirectoryError is reported by a Host when the directory a scene
// should be saved to does not exist.
type MissingDirectoryError struct {
	Directory string
}

func (e *MissingDirectoryError) Error() string {
	return fmt.Sprintf("Missing directory '%s'", e.Directory)
}

func IsMissingDirectory(err error) bool {
	var e *MissingDirectoryError
	return errors.As(err, &e)
}
