package hook

import (
	"errors"
	"testing"

	"github.com/warpdl/sizeprio/pkg/nzbrpc"
)

func TestLoadInvocation(t *testing.T) {
	inv, err := LoadInvocation(envLookup(addedEnv("42")))
	if err != nil {
		t.Fatalf("LoadInvocation: %v", err)
	}
	if inv.NZBID != 42 || inv.Event != "NZB_ADDED" || inv.NZBName != "env-name" {
		t.Errorf("unexpected invocation %+v", inv)
	}
	want := nzbrpc.Credentials{Host: "0.0.0.0", Port: "6789", Username: "nzbget", Password: "tegbzn6789"}
	if inv.Credentials != want {
		t.Errorf("expected credentials %+v, got %+v", want, inv.Credentials)
	}
}

func TestLoadInvocation_Gates(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]string)
		want   error
	}{
		{"no marker", func(e map[string]string) { delete(e, "NZBOP_UNPACKPASSFILE") }, ErrInvalidInvocation},
		{"no marker wrong event", func(e map[string]string) {
			delete(e, "NZBOP_UNPACKPASSFILE")
			e["NZBNA_EVENT"] = "NZB_DELETED"
		}, ErrInvalidInvocation},
		{"other event", func(e map[string]string) { e["NZBNA_EVENT"] = "FILE_DOWNLOADED" }, ErrUnsupportedEvent},
		{"no event", func(e map[string]string) { delete(e, "NZBNA_EVENT") }, ErrUnsupportedEvent},
		{"other event bad id", func(e map[string]string) {
			e["NZBNA_EVENT"] = "NZB_DOWNLOADED"
			e["NZBNA_NZBID"] = "x"
		}, ErrUnsupportedEvent},
		{"no id", func(e map[string]string) { delete(e, "NZBNA_NZBID") }, ErrInvalidInvocation},
		{"bad id", func(e map[string]string) { e["NZBNA_NZBID"] = "4x" }, ErrInvalidInvocation},
		{"no host", func(e map[string]string) { delete(e, "NZBOP_CONTROLIP") }, nzbrpc.ErrConnectionConfig},
		{"bad port", func(e map[string]string) { e["NZBOP_CONTROLPORT"] = "" }, nzbrpc.ErrConnectionConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := addedEnv("42")
			tt.mutate(env)
			_, err := LoadInvocation(envLookup(env))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadInvocation_EmptyCredentialsAllowed(t *testing.T) {
	env := addedEnv("1")
	delete(env, "NZBOP_CONTROLUSERNAME")
	delete(env, "NZBOP_CONTROLPASSWORD")
	inv, err := LoadInvocation(envLookup(env))
	if err != nil {
		t.Fatalf("LoadInvocation: %v", err)
	}
	if inv.Credentials.Username != "" || inv.Credentials.Password != "" {
		t.Errorf("expected empty credentials, got %+v", inv.Credentials)
	}
}
