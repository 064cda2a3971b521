package filefilter

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoFileSystem is returned by [Entry.Stat] when the entry carries neither file info nor a file system to obtain it from.
var ErrNoFileSystem = errors.New("entry has no file system to inspect")

// InspectionError is returned when the metadata of an entry cannot be obtained.
type InspectionError struct {
	Path string
	Err  error
}

func (e *InspectionError) Error() string {
	return fmt.Sprintf("failed to inspect %s: %v", e.Path, e.Err)
}

func (e *InspectionError) Unwrap() error {
	return e.Err
}

// errorf returns err unmodified if it is [context.Canceled] or [context.DeadlineExceeded],
// otherwise it calls [fmt.Errorf] with the provided parameters.
func errorf(err error, format string, a ...any) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf(format, a...)
}
