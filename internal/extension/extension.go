// Package extension builds the files NZBGet needs to run sizeprio as a
// queue script: an extension manifest for NZBGet 24 and later, and a
// wrapper script whose header declares the same options for older
// releases. NZBGet reads the options from either file, shows them in its
// settings page and exports them to the script as NZBPO_<NAME>.
package extension

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/warpdl/sizeprio/common"
)

const (
	// Name is the extension name NZBGet lists the script under.
	Name = "SizePriority"
	// ScriptFile is the entry point NZBGet executes.
	ScriptFile = Name + ".sh"
	// ManifestFile is the extension manifest file name.
	ManifestFile = "manifest.json"
	// BinaryFile is the name the sizeprio binary is installed under.
	BinaryFile = "sizeprio"

	about = "Sets the priority of a newly added download by its size."
)

// Option is one script option shown in NZBGet's settings.
type Option struct {
	Name        string
	Description []string
	// Value is the default, a float64 for sizes and a string otherwise.
	Value interface{}
	// Select, when set, restricts the option to these values.
	Select []string
}

// Manifest is NZBGet's extension manifest.
type Manifest struct {
	Main             string           `json:"main"`
	Name             string           `json:"name"`
	Homepage         string           `json:"homepage"`
	Kind             string           `json:"kind"`
	DisplayName      string           `json:"displayName"`
	Version          string           `json:"version"`
	NZBGetMinVersion string           `json:"nzbgetMinVersion"`
	Author           string           `json:"author"`
	License          string           `json:"license"`
	About            string           `json:"about"`
	QueueEvents      string           `json:"queueEvents"`
	Requirements     []string         `json:"requirements"`
	Description      []string         `json:"description"`
	Options          []ManifestOption `json:"options"`
	Commands         []interface{}    `json:"commands"`
	TaskTime         string           `json:"taskTime"`
	Sections         []interface{}    `json:"sections"`
}

// ManifestOption is one entry of Manifest.Options.
type ManifestOption struct {
	Name        string        `json:"name"`
	DisplayName string        `json:"displayName"`
	Value       interface{}   `json:"value"`
	Description []string      `json:"description"`
	Select      []interface{} `json:"select"`
}

// GenerateManifest returns the indented manifest.json for opts.
func GenerateManifest(opts []Option, version string) []byte {
	m := Manifest{
		Main:             ScriptFile,
		Name:             Name,
		Kind:             "QUEUE",
		DisplayName:      "Size Priority",
		Version:          version,
		NZBGetMinVersion: "24.0",
		About:            about,
		QueueEvents:      common.EventNZBAdded,
		Requirements:     []string{"The " + BinaryFile + " binary in the extension directory."},
		Description: []string{
			about,
			"Each new job gets the priority of the first size tier it fits in.",
		},
		Options:  make([]ManifestOption, 0, len(opts)),
		Commands: []interface{}{},
		Sections: []interface{}{},
	}
	for _, o := range opts {
		sel := make([]interface{}, 0, len(o.Select))
		for _, s := range o.Select {
			sel = append(sel, s)
		}
		m.Options = append(m.Options, ManifestOption{
			Name:        o.Name,
			DisplayName: o.Name,
			Value:       o.Value,
			Description: o.Description,
			Select:      sel,
		})
	}
	b, _ := json.MarshalIndent(m, "", "  ")
	return b
}

const rule = "##############################################################################"

// banner pads title into a "### TITLE   ###" header line.
func banner(title string) string {
	line := "### " + title
	return line + strings.Repeat(" ", len(rule)-len(line)-3) + "###"
}

// GenerateScript returns the POSIX shell wrapper that starts the sizeprio
// binary next to it. Its header is the one NZBGet scans for in script
// files: the queue-script banner, the options block and the queue events.
func GenerateScript(opts []Option) []byte {
	var b bytes.Buffer
	fmt.Fprintln(&b, "#!/bin/sh")
	fmt.Fprintln(&b, "#")
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, banner("NZBGET QUEUE SCRIPT"))
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "# %s\n#\n# Runs the %s binary installed next to this script.\n\n", about, BinaryFile)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, banner("OPTIONS"))
	for _, o := range opts {
		fmt.Fprintln(&b)
		for i, line := range o.Description {
			if i == len(o.Description)-1 && len(o.Select) > 0 {
				line = strings.TrimSuffix(line, ".") + " (" + strings.Join(o.Select, ", ") + ")."
			}
			fmt.Fprintf(&b, "# %s\n", line)
		}
		fmt.Fprintf(&b, "#%s=%v\n", o.Name, o.Value)
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "### QUEUE EVENTS: %s\n", common.EventNZBAdded)
	fmt.Fprintln(&b, banner("NZBGET QUEUE SCRIPT"))
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "exec \"$(dirname \"$0\")/%s\"\n", BinaryFile)
	return b.Bytes()
}
