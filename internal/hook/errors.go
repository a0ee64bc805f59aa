package hook

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInvocation means the process was not started by a
	// compatible NZBGet or the event data is unusable.
	ErrInvalidInvocation = errors.New("not a valid NZBGet queue-script invocation")
	// ErrUnsupportedEvent is not a failure: the event is one this hook ignores.
	ErrUnsupportedEvent = errors.New("unsupported queue event")
	ErrJobNotFound      = errors.New("group not found in queue")
	ErrEmptyQueue       = fmt.Errorf("%w: queue is empty", ErrJobNotFound)
	ErrInvalidJobSize   = errors.New("group has no usable size")
)
