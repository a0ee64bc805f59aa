package hook

import (
	"context"
	"errors"

	"github.com/warpdl/sizeprio/internal/priority"
	"github.com/warpdl/sizeprio/pkg/logger"
	"github.com/warpdl/sizeprio/pkg/nzbrpc"
)

// State is a step of a run.
type State string

const (
	StateStart      State = "start"
	StateGated      State = "gated"
	StateConnected  State = "connected"
	StateLocated    State = "located"
	StateClassified State = "classified"
	StateCommanded  State = "commanded"
	StateDone       State = "done"
	StateSkipped    State = "skipped"
	StateAborted    State = "aborted"
)

// Outcome is how a run ended.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeSkipped
	OutcomeFailed
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeFailed:
		return "failed"
	case OutcomeInvalid:
		return "invalid invocation"
	}
	return "unknown"
}

// Dialer builds a control API client from the invocation's credentials.
type Dialer func(nzbrpc.Credentials) (nzbrpc.Client, error)

// Hook runs invocations against one priority ladder. A Hook is meant for a
// single run; State reports where that run ended.
type Hook struct {
	ladder *priority.Ladder
	dial   Dialer
	log    logger.Logger
	trace  []State
}

func New(ladder *priority.Ladder, dial Dialer, log logger.Logger) *Hook {
	return &Hook{
		ladder: ladder,
		dial:   dial,
		log:    log,
		trace:  []State{StateStart},
	}
}

// State returns the state the last run reached.
func (h *Hook) State() State {
	return h.trace[len(h.trace)-1]
}

// Trace returns every state the last run went through, in order.
func (h *Hook) Trace() []State {
	return append([]State(nil), h.trace...)
}

func (h *Hook) enter(s State) {
	h.trace = append(h.trace, s)
}

// Run gates the invocation described by lookup and, for NZB_ADDED, sets
// the new group's priority. The returned error is nil for OutcomeSuccess
// and OutcomeSkipped.
func (h *Hook) Run(ctx context.Context, lookup LookupFunc) (Outcome, error) {
	h.trace = []State{StateStart}
	inv, outcome, err := Gate(lookup)
	switch {
	case outcome == OutcomeSkipped:
		h.enter(StateSkipped)
		return outcome, nil
	case err != nil:
		return h.abort(outcome, err)
	}
	h.enter(StateGated)

	client, err := h.dial(inv.Credentials)
	if err != nil {
		return h.abort(OutcomeFailed, err)
	}
	defer client.Close()
	h.enter(StateConnected)

	g, err := NewDirectory(client).Locate(ctx, inv.NZBID)
	if err != nil {
		return h.abort(OutcomeFailed, err)
	}
	h.enter(StateLocated)
	name := g.Name
	if name == "" {
		name = inv.NZBName
		h.log.Warning("NZBGet reported no name for group %d, using %q", g.ID, name)
	}
	h.log.Detail("Size of %s is %.2f MB", name, g.FileSizeMB)

	label := h.ladder.Classify(g.FileSizeMB)
	h.enter(StateClassified)
	h.log.Detail("Set priority of %s to: %s", name, label)

	if err := NewCommander(client).Apply(ctx, g.ID, label); err != nil {
		return h.abort(OutcomeFailed, err)
	}
	h.enter(StateCommanded)
	h.enter(StateDone)
	return OutcomeSuccess, nil
}

// Gate loads the invocation described by lookup and tells whether a run
// may go on. OutcomeSuccess means it may; OutcomeSkipped comes with a nil
// error for events other than NZB_ADDED; otherwise the error says why the
// run ends with OutcomeInvalid or OutcomeFailed.
func Gate(lookup LookupFunc) (*Invocation, Outcome, error) {
	inv, err := LoadInvocation(lookup)
	switch {
	case errors.Is(err, ErrUnsupportedEvent):
		return nil, OutcomeSkipped, nil
	case errors.Is(err, ErrInvalidInvocation):
		return nil, OutcomeInvalid, err
	case err != nil:
		return nil, OutcomeFailed, err
	}
	return inv, OutcomeSuccess, nil
}

func (h *Hook) abort(o Outcome, err error) (Outcome, error) {
	h.enter(StateAborted)
	return o, err
}
