package cmd

import (
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"github.com/warpdl/sizeprio/common"
	"github.com/warpdl/sizeprio/internal/priority"
	"github.com/warpdl/sizeprio/pkg/nzbrpc"
)

// tierSettings are the flag destinations of the five ladder tiers, from
// the smallest downloads to the largest.
var tierSettings [priority.TierCount]priority.Tier

var (
	ladderFile    string
	transportName string

	// appFs is where --ladder-file is read from.
	appFs = afero.NewOsFs()
)

// tierOptions names the NZBGet script options of each tier.
var tierOptions = [priority.TierCount]struct {
	size, label string
	flagSize    string
	flagLabel   string
}{
	{"VerySmallSize", "PriorityVerySmall", "very-small-size", "priority-very-small"},
	{"SmallSize", "PrioritySmall", "small-size", "priority-small"},
	{"NormalSize", "PriorityNormal", "normal-size", "priority-normal"},
	{"BigSize", "PriorityBig", "big-size", "priority-big"},
	{"VeryBigSize", "PriorityVeryBig", "very-big-size", "priority-very-big"},
}

func ladderFlags() []cli.Flag {
	defaults := priority.DefaultTiers()
	flags := make([]cli.Flag, 0, 2*priority.TierCount)
	for i, opt := range tierOptions {
		sizeUsage := "jobs smaller than this many MB get the tier's priority"
		if i == priority.TierCount-1 {
			sizeUsage = "upper bound of the catch-all tier, must exceed the big size"
		}
		flags = append(flags,
			cli.Float64Flag{
				Name:        opt.flagSize,
				Usage:       sizeUsage,
				Value:       defaults[i].Below,
				EnvVar:      common.ScriptOptionEnv(opt.size),
				Destination: &tierSettings[i].Below,
			},
			cli.StringFlag{
				Name:        opt.flagLabel,
				Usage:       "priority for the tier (very-high, high, normal, low, very-low, force or a number)",
				Value:       defaults[i].Label,
				EnvVar:      common.ScriptOptionEnv(opt.label),
				Destination: &tierSettings[i].Label,
			},
		)
	}
	return flags
}

func globalFlags() []cli.Flag {
	return append(ladderFlags(),
		cli.StringFlag{
			Name:        "ladder-file",
			Usage:       "YAML file with the five tiers, replaces the tier flags",
			EnvVar:      common.ScriptOptionEnv("LadderFile"),
			Destination: &ladderFile,
		},
		cli.StringFlag{
			Name:        "transport",
			Usage:       "control API to use: xmlrpc (NZBGet's endpoint) or jsonrpc (a JSON-RPC 2.0 proxy, not NZBGet's native /jsonrpc)",
			Value:       string(nzbrpc.TransportXMLRPC),
			EnvVar:      common.ScriptOptionEnv("Transport"),
			Destination: &transportName,
		},
	)
}

// buildLadder returns the validated ladder from --ladder-file, or from the
// tier flags when no file is set.
func buildLadder() (*priority.Ladder, error) {
	if ladderFile != "" {
		return priority.Load(appFs, ladderFile)
	}
	return priority.New(tierSettings[:])
}

// unsetEmptyOptions removes the script options NZBGet exported without a
// value, so their flags keep the defaults.
func unsetEmptyOptions(flags []cli.Flag) {
	for _, f := range flags {
		var env string
		switch f := f.(type) {
		case cli.Float64Flag:
			env = f.EnvVar
		case cli.StringFlag:
			env = f.EnvVar
		}
		if env == "" {
			continue
		}
		if v, ok := os.LookupEnv(env); ok && strings.TrimSpace(v) == "" {
			os.Unsetenv(env)
		}
	}
}
