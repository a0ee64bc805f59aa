package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"
	cmdcommon "github.com/warpdl/sizeprio/cmd/common"
	"github.com/warpdl/sizeprio/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

// Execute runs the command line and returns the process exit code. With
// no command it runs the queue-script hook.
func Execute(args []string, bArgs BuildArgs) int {
	exitCode := 0
	buildVersion = bArgs.Version
	app := cli.App{
		Name:                  "sizeprio",
		HelpName:              "sizeprio",
		Usage:                 "Set NZBGet queue priority by download size.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "sizeprio [global options] [command] [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          cmdcommon.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:               "classify",
				Aliases:            []string{"c"},
				Usage:              "print the priority for sizes in MB",
				UsageText:          "classify <sizeMB>...",
				Description:        ClassifyDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       cmdcommon.UsageErrorCallback,
				Action:             classify,
			},
			{
				Name:               "install",
				Aliases:            []string{"i"},
				Usage:              "install sizeprio as an NZBGet extension",
				UsageText:          "install <nzbget-script-dir>",
				Description:        InstallDescription,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				OnUsageError:       cmdcommon.UsageErrorCallback,
				Action:             install,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  cmdcommon.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of sizeprio",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             cmdcommon.GetVersion,
			},
		},
		Action: func(ctx *cli.Context) error {
			exitCode = runHook(ctx)
			return nil
		},
		Flags:       globalFlags(),
		HideHelp:    true,
		HideVersion: true,
	}
	cmdcommon.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	unsetEmptyOptions(app.Flags)
	if err := app.Run(args); err != nil {
		log := newLogger()
		defer log.Close()
		log.Error("%v", err)
		return common.ExitError
	}
	return exitCode
}
