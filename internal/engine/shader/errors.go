package shader

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProgram is returned when a program that is not linked is
	// activated or receives a uniform.
	ErrInvalidProgram = errors.New("shader: program is not linked")

	// ErrDeleted is the failure recorded on a program after Delete.
	ErrDeleted = errors.New("shader: program deleted")

	// ErrUniformNotFound is returned by uniform read-back for names the
	// linked program does not expose. Setters never return it.
	ErrUniformNotFound = errors.New("shader: uniform not found")

	// ErrShortMatrix is returned by SetMatrix when fewer than 16 floats per
	// matrix are supplied.
	ErrShortMatrix = errors.New("shader: matrix data shorter than count*16")
)

// SourceReadError reports a stage source that could not be read.
type SourceReadError struct {
	Stage Stage
	Path  string
	Err   error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("%s shader: read %s: %v", e.Stage, e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

// CompileError carries the driver log of a stage that failed to compile.
type CompileError struct {
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader: compile failed: %s", e.Stage, e.Log)
}

// LinkError carries the driver log of a failed link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link failed: %s", e.Log)
}
