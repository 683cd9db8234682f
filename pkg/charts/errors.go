package charts

import (
	"fmt"

	"github.com/pkg/errors"
)

// RenderFailure is the only error a chart pipeline reports. Msg is meant to
// be shown to the user as is.
type RenderFailure struct {
	Msg string
	Err error
}

func (f *RenderFailure) Error() string {
	return "Error: " + f.Msg
}

func (f *RenderFailure) Unwrap() error {
	return f.Err
}

func Failf(format string, args ...any) *RenderFailure {
	return &RenderFailure{Msg: fmt.Sprintf(format, args...)}
}

// AsRenderFailure returns err as a RenderFailure, wrapping it when needed.
func AsRenderFailure(err error) *RenderFailure {
	if err == nil {
		return nil
	}
	var f *RenderFailure
	if errors.As(err, &f) {
		return f
	}
	return &RenderFailure{Msg: err.Error(), Err: err}
}
