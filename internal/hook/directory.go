package hook

import (
	"context"
	"fmt"

	"github.com/warpdl/sizeprio/pkg/nzbrpc"
)

// FindGroup returns the first group with the given id.
func FindGroup(groups []nzbrpc.Group, id int64) (nzbrpc.Group, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return nzbrpc.Group{}, false
}

// Directory looks groups up in the live queue.
type Directory struct {
	client nzbrpc.Client
}

func NewDirectory(client nzbrpc.Client) *Directory {
	return &Directory{client: client}
}

// Locate fetches the whole queue once and returns the group with id. The
// group must carry a size.
func (d *Directory) Locate(ctx context.Context, id int64) (nzbrpc.Group, error) {
	groups, err := d.client.ListGroups(ctx, 0)
	if err != nil {
		return nzbrpc.Group{}, err
	}
	if len(groups) == 0 {
		return nzbrpc.Group{}, fmt.Errorf("%w (looking for %d)", ErrEmptyQueue, id)
	}
	g, ok := FindGroup(groups, id)
	if !ok {
		return nzbrpc.Group{}, fmt.Errorf("%w: id %d among %d groups", ErrJobNotFound, id, len(groups))
	}
	if !g.SizeKnown {
		return nzbrpc.Group{}, fmt.Errorf("%w: id %d", ErrInvalidJobSize, id)
	}
	return g, nil
}

// Commander applies priorities.
type Commander struct {
	client nzbrpc.Client
}

func NewCommander(client nzbrpc.Client) *Commander {
	return &Commander{client: client}
}

// Apply sends a single GroupSetPriority for id.
func (c *Commander) Apply(ctx context.Context, id int64, label string) error {
	return c.client.SetGroupPriority(ctx, label, id)
}
