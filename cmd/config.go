package cmd

const DESCRIPTION = `
sizeprio is an NZBGet queue script. When a new NZB is added to the
queue it looks at the size NZBGet reports for it and sets the group's
priority from a ladder of five size tiers: small downloads go first,
large ones wait.

All settings can be given as NZBGet script options (NZBPO_* variables)
or as flags.
`

const ClassifyDescription = `The classify command prints the priority each given
size in megabytes maps to under the configured ladder.
It does not contact NZBGet.

Example:
        sizeprio classify 50 2048 9000
        sizeprio --ladder-file ladder.yaml classify 700

`

const InstallDescription = `The install command copies sizeprio into the NZBGet
script directory as the SizePriority extension: the binary,
a wrapper script and manifest.json. NZBGet then shows the
script options in its settings and runs the script on
NZB_ADDED.

Example:
        sizeprio install /usr/share/nzbget/scripts

`

const HELP_TEMPL = `Usage: {{if .UsageText}}{{.UsageText}}{{else}}{{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}} {{if .ArgsUsage}}{{.ArgsUsage}}{{else}}[arguments...]{{end}}{{end}}
{{.Description}}{{if .VisibleCommands}}
Commands:{{range .VisibleCommands}}
{{"\t"}}{{index .Names 0}}{{"\t:\t"}}{{.Usage}}{{end}}{{end}}{{if .VisibleFlags}}

Global Options:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

Use "{{.HelpName}} help <command>" for more information about any command.

`

const CMD_HELP_TEMPL = `{{if .Description}}{{.Description}}{{else}}{{.HelpName}} - {{.Usage}}

{{end}}Usage:
        {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{else}}[arguments...]{{end}}{{if .VisibleFlags}}

Supported Flags:{{range .VisibleFlags}}
  {{.}}{{end}}{{end}}

`
