package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli"
	"github.com/warpdl/sizeprio/internal/extension"
	"github.com/warpdl/sizeprio/internal/priority"
	"github.com/warpdl/sizeprio/pkg/nzbrpc"
)

var (
	executable   = os.Executable
	buildVersion string
)

var priorityChoices = []string{
	priority.LabelVeryHigh,
	priority.LabelHigh,
	priority.LabelNormal,
	priority.LabelLow,
	priority.LabelVeryLow,
	"force",
}

// scriptOptions lists the NZBGet script options behind the NZBPO_* flag
// bindings, with the flags' defaults.
func scriptOptions() []extension.Option {
	defaults := priority.DefaultTiers()
	opts := make([]extension.Option, 0, 2*priority.TierCount+2)
	for i, opt := range tierOptions {
		sizeDesc := fmt.Sprintf("Jobs smaller than this many MB get %s.", opt.label)
		labelDesc := fmt.Sprintf("Priority for jobs below %s.", opt.size)
		if i == priority.TierCount-1 {
			sizeDesc = fmt.Sprintf("Upper bound of the last tier, must exceed %s.", tierOptions[i-1].size)
			labelDesc = "Priority for all larger jobs."
		}
		opts = append(opts,
			extension.Option{Name: opt.size, Description: []string{sizeDesc}, Value: defaults[i].Below},
			extension.Option{Name: opt.label, Description: []string{labelDesc}, Value: defaults[i].Label, Select: priorityChoices},
		)
	}
	return append(opts,
		extension.Option{
			Name:        "LadderFile",
			Description: []string{"YAML file with the five tiers, replaces the options above when set."},
			Value:       "",
		},
		extension.Option{
			Name: "Transport",
			Description: []string{
				"Control API to use.",
				"Keep xmlrpc for NZBGet, jsonrpc needs a JSON-RPC 2.0 proxy.",
			},
			Value:  string(nzbrpc.TransportXMLRPC),
			Select: []string{string(nzbrpc.TransportXMLRPC), string(nzbrpc.TransportJSONRPC)},
		},
	)
}

func install(ctx *cli.Context) error {
	scriptDir := ctx.Args().First()
	if scriptDir == "" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	bin, err := executable()
	if err != nil {
		return fmt.Errorf("install: executable path: %w", err)
	}
	in := &extension.Installer{
		Fs:      appFs,
		Dir:     filepath.Join(scriptDir, extension.Name),
		Binary:  bin,
		Version: buildVersion,
		Options: scriptOptions(),
	}
	paths, err := in.Install()
	if err != nil {
		return fmt.Errorf("install: %w", err)
	}
	fmt.Println("Installed:")
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	fmt.Println("Reload NZBGet and enable SizePriority under Extension Scripts.")
	return nil
}
