package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"

	"github.com/warpdl/sizeprio/pkg/logger"
	"github.com/warpdl/sizeprio/pkg/nzbrpc"
)

// captureOutput runs f with os.Stdout and os.Stderr redirected to pipes
// and returns what was written to each.
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()
	os.Stdout = wOut
	os.Stderr = wErr

	f()

	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	var bufOut, bufErr bytes.Buffer
	io.Copy(&bufOut, rOut)
	io.Copy(&bufErr, rErr)
	return bufOut.String(), bufErr.String()
}

type priorityCall struct {
	label string
	id    int64
}

type fakeNZBGet struct {
	groups []nzbrpc.Group
	lists  int
	sets   []priorityCall
}

func (f *fakeNZBGet) ListGroups(_ context.Context, _ int) ([]nzbrpc.Group, error) {
	f.lists++
	return f.groups, nil
}

func (f *fakeNZBGet) SetGroupPriority(_ context.Context, label string, id int64) error {
	f.sets = append(f.sets, priorityCall{label: label, id: id})
	return nil
}

func (f *fakeNZBGet) Close() error { return nil }

type testEnv struct {
	env       map[string]string
	nzbget    *fakeNZBGet
	log       *logger.MockLogger
	dials     int
	transport nzbrpc.Transport
}

// setupHook swaps the process environment, dialer and logger used by
// runHook for test doubles.
func setupHook(t *testing.T, groups ...nzbrpc.Group) *testEnv {
	t.Helper()
	te := &testEnv{
		env: map[string]string{
			"NZBOP_UNPACKPASSFILE":  "",
			"NZBNA_EVENT":           "NZB_ADDED",
			"NZBNA_NZBID":           "42",
			"NZBOP_CONTROLIP":       "0.0.0.0",
			"NZBOP_CONTROLPORT":     "6789",
			"NZBOP_CONTROLUSERNAME": "nzbget",
			"NZBOP_CONTROLPASSWORD": "tegbzn6789",
		},
		nzbget: &fakeNZBGet{groups: groups},
		log:    logger.NewMockLogger(),
	}
	origLookup, origDial, origLogger, origFs := lookupEnv, dial, newLogger, appFs
	lookupEnv = func(key string) (string, bool) {
		v, ok := te.env[key]
		return v, ok
	}
	dial = func(c nzbrpc.Credentials, tr nzbrpc.Transport) (nzbrpc.Client, error) {
		te.dials++
		te.transport = tr
		return te.nzbget, nil
	}
	newLogger = func() logger.Logger { return te.log }
	t.Cleanup(func() {
		lookupEnv, dial, newLogger, appFs = origLookup, origDial, origLogger, origFs
	})
	return te
}

func group(id int64, name string, size float64) nzbrpc.Group {
	return nzbrpc.Group{ID: id, Name: name, FileSizeMB: size, SizeKnown: true}
}

