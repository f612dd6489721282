package painter

import (
	"errors"
	"fmt"

	"github.com/ushitora-anqou/aqpaint/constant"
)

// InitError means the platform video subsystem could not be started.
type InitError struct {
	Platform string
	Err      error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("Unable to initialize %s: %v", e.Platform, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// VideoModeError means a drawable surface could not be created or resized.
type VideoModeError struct {
	Op  string // "set" or "resize"
	Err error
}

func (e *VideoModeError) Error() string {
	return fmt.Sprintf("Unable to %s video mode: %v", e.Op, e.Err)
}

func (e *VideoModeError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by the program to its process exit code.
func ExitCode(err error) int {
	if err == nil {
		return constant.EXIT_OK
	}
	var vmErr *VideoModeError
	if errors.As(err, &vmErr) {
		return constant.EXIT_VIDEO_MODE_FAIL
	}
	return constant.EXIT_INIT_FAILURE
}
