package hook

import (
	"fmt"
	"strconv"

	"github.com/warpdl/sizeprio/common"
	"github.com/warpdl/sizeprio/pkg/nzbrpc"
)

// LookupFunc reads one environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Invocation is what NZBGet tells the script about the event.
type Invocation struct {
	Event       string
	NZBID       int64
	NZBName     string
	Credentials nzbrpc.Credentials
}

// LoadInvocation reads and gates the invocation. Checks run in order: the
// NZBGet marker (ErrInvalidInvocation), the event kind
// (ErrUnsupportedEvent), the group id (ErrInvalidInvocation) and the
// control settings (nzbrpc.ErrConnectionConfig).
func LoadInvocation(lookup LookupFunc) (*Invocation, error) {
	if _, ok := lookup(common.MarkerEnv); !ok {
		return nil, fmt.Errorf("%w: %s is not set", ErrInvalidInvocation, common.MarkerEnv)
	}
	event, _ := lookup(common.EventEnv)
	if event != common.EventNZBAdded {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEvent, event)
	}
	raw, _ := lookup(common.NZBIDEnv)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not a group id", ErrInvalidInvocation, common.NZBIDEnv, raw)
	}
	inv := &Invocation{Event: event, NZBID: id}
	inv.NZBName, _ = lookup(common.NZBNameEnv)
	inv.Credentials.Host, _ = lookup(common.ControlIPEnv)
	inv.Credentials.Port, _ = lookup(common.ControlPortEnv)
	inv.Credentials.Username, _ = lookup(common.ControlUsernameEnv)
	inv.Credentials.Password, _ = lookup(common.ControlPasswordEnv)
	if err := inv.Credentials.Validate(); err != nil {
		return nil, err
	}
	return inv, nil
}
