package extension

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Installer writes the extension into one NZBGet scripts directory.
type Installer struct {
	Fs afero.Fs
	// Dir is the extension directory, usually <ScriptDir>/SizePriority.
	Dir string
	// Binary is the path of the sizeprio executable to copy in.
	Binary  string
	Version string
	Options []Option
}

// Validate checks that all required fields are set.
func (in *Installer) Validate() error {
	if in.Dir == "" {
		return errors.New("extension directory is required")
	}
	if in.Binary == "" {
		return errors.New("binary path is required")
	}
	return nil
}

// Install creates Dir and writes the manifest, the wrapper script and a
// copy of the binary into it. It returns the written paths.
func (in *Installer) Install() ([]string, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := in.Fs.MkdirAll(in.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create %s: %w", in.Dir, err)
	}
	bin, err := afero.ReadFile(in.Fs, in.Binary)
	if err != nil {
		return nil, fmt.Errorf("read binary: %w", err)
	}
	files := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{ManifestFile, GenerateManifest(in.Options, in.Version), 0644},
		{ScriptFile, GenerateScript(in.Options), 0755},
		{BinaryFile, bin, 0755},
	}
	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(in.Dir, f.name)
		if filepath.Clean(in.Binary) == path {
			// reinstalling from the extension directory itself
			continue
		}
		if err := afero.WriteFile(in.Fs, path, f.data, f.perm); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		if err := in.Fs.Chmod(path, f.perm); err != nil {
			return written, fmt.Errorf("chmod %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
