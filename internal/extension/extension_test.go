package extension

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

var testOptions = []Option{
	{Name: "VerySmallSize", Description: []string{"Jobs smaller than this many MB."}, Value: 100.0},
	{
		Name:        "PriorityVerySmall",
		Description: []string{"Priority for very small jobs."},
		Value:       "very-high",
		Select:      []string{"very-high", "high"},
	},
}

func TestGenerateManifest(t *testing.T) {
	var m Manifest
	if err := json.Unmarshal(GenerateManifest(testOptions, "1.2.3"), &m); err != nil {
		t.Fatalf("manifest is not JSON: %v", err)
	}
	if m.Kind != "QUEUE" || m.QueueEvents != "NZB_ADDED" {
		t.Errorf("expected a QUEUE extension on NZB_ADDED, got %q on %q", m.Kind, m.QueueEvents)
	}
	if m.Main != ScriptFile || m.Name != Name || m.Version != "1.2.3" {
		t.Errorf("unexpected main/name/version %q/%q/%q", m.Main, m.Name, m.Version)
	}
	if len(m.Options) != 2 {
		t.Fatalf("expected 2 options, got %d", len(m.Options))
	}
	if o := m.Options[0]; o.Name != "VerySmallSize" || o.Value != 100.0 || len(o.Select) != 0 {
		t.Errorf("unexpected size option %+v", o)
	}
	if o := m.Options[1]; o.Value != "very-high" || len(o.Select) != 2 || o.Select[1] != "high" {
		t.Errorf("unexpected priority option %+v", o)
	}
}

func TestGenerateScript(t *testing.T) {
	script := string(GenerateScript(testOptions))
	if !strings.HasPrefix(script, "#!/bin/sh\n") {
		t.Errorf("expected a shell shebang, got %q", script[:20])
	}
	for _, want := range []string{
		"### NZBGET QUEUE SCRIPT",
		"### OPTIONS",
		"#VerySmallSize=100\n",
		"# Priority for very small jobs (very-high, high).\n#PriorityVerySmall=very-high\n",
		"### QUEUE EVENTS: NZB_ADDED\n",
		`exec "$(dirname "$0")/sizeprio"`,
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q:\n%s", want, script)
		}
	}
	for _, line := range strings.Split(script, "\n") {
		if strings.HasPrefix(line, "###") && strings.HasSuffix(line, "###") && len(line) != len(rule) {
			t.Errorf("banner %q is %d wide, want %d", line, len(line), len(rule))
		}
	}
}

func TestInstaller_Install(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/usr/bin/sizeprio", []byte("ELF"), 0755); err != nil {
		t.Fatal(err)
	}
	in := &Installer{Fs: fs, Dir: "/scripts/SizePriority", Binary: "/usr/bin/sizeprio", Version: "1.0.0", Options: testOptions}

	paths, err := in.Install()
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 files, got %v", paths)
	}
	bin, err := afero.ReadFile(fs, "/scripts/SizePriority/sizeprio")
	if err != nil || string(bin) != "ELF" {
		t.Errorf("expected the binary copied, got %q (%v)", bin, err)
	}
	fi, err := fs.Stat("/scripts/SizePriority/" + ScriptFile)
	if err != nil {
		t.Fatalf("stat script: %v", err)
	}
	if fi.Mode().Perm()&0111 == 0 {
		t.Errorf("expected an executable script, got %v", fi.Mode())
	}
	if ok, _ := afero.Exists(fs, "/scripts/SizePriority/"+ManifestFile); !ok {
		t.Error("expected manifest.json")
	}
}

func TestInstaller_Reinstall(t *testing.T) {
	fs := afero.NewMemMapFs()
	afero.WriteFile(fs, "/scripts/SizePriority/sizeprio", []byte("ELF"), 0755)
	in := &Installer{Fs: fs, Dir: "/scripts/SizePriority", Binary: "/scripts/SizePriority/sizeprio", Options: testOptions}

	paths, err := in.Install()
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if len(paths) != 2 {
		t.Errorf("expected the binary left in place, got %v", paths)
	}
}

func TestInstaller_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   Installer
	}{
		{"no dir", Installer{Binary: "/bin/sizeprio"}},
		{"no binary", Installer{Dir: "/scripts"}},
	}
	for _, tt := range tests {
		if _, err := tt.in.Install(); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestInstaller_MissingBinary(t *testing.T) {
	in := &Installer{Fs: afero.NewMemMapFs(), Dir: "/scripts/SizePriority", Binary: "/nope"}
	if _, err := in.Install(); err == nil {
		t.Error("expected an error for a missing binary")
	}
}
