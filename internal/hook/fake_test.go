package hook

import (
	"context"

	"github.com/warpdl/sizeprio/pkg/nzbrpc"
)

type setCall struct {
	label string
	id    int64
}

// fakeClient records calls made against the control API.
type fakeClient struct {
	groups   []nzbrpc.Group
	listErr  error
	setErr   error
	offsets  []int
	setCalls []setCall
	closed   bool
}

func (f *fakeClient) ListGroups(_ context.Context, offset int) ([]nzbrpc.Group, error) {
	f.offsets = append(f.offsets, offset)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.groups, nil
}

func (f *fakeClient) SetGroupPriority(_ context.Context, label string, id int64) error {
	f.setCalls = append(f.setCalls, setCall{label: label, id: id})
	return f.setErr
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

// fakeDialer hands out client and counts dials.
type fakeDialer struct {
	client *fakeClient
	err    error
	dials  []nzbrpc.Credentials
}

func (d *fakeDialer) dial(c nzbrpc.Credentials) (nzbrpc.Client, error) {
	d.dials = append(d.dials, c)
	if d.err != nil {
		return nil, d.err
	}
	return d.client, nil
}

func envLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func addedEnv(id string) map[string]string {
	return map[string]string{
		"NZBOP_UNPACKPASSFILE":  "",
		"NZBNA_EVENT":           "NZB_ADDED",
		"NZBNA_NZBID":           id,
		"NZBNA_NZBNAME":         "env-name",
		"NZBOP_CONTROLIP":       "0.0.0.0",
		"NZBOP_CONTROLPORT":     "6789",
		"NZBOP_CONTROLUSERNAME": "nzbget",
		"NZBOP_CONTROLPASSWORD": "tegbzn6789",
	}
}
