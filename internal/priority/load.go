package priority

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type ladderFile struct {
	Tiers []Tier `yaml:"tiers"`
}

// Load reads a YAML ladder definition from path on fs:
//
//	tiers:
//	  - below: 100
//	    label: very-high
//	  ...
//
// The result is validated the same way New validates tiers.
func Load(fs afero.Fs, path string) (*Ladder, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read ladder file: %w", err)
	}
	var lf ladderFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrInvalidLadder, path, err)
	}
	l, err := New(lf.Tiers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}
