package main

import (
	"os"

	"github.com/warpdl/sizeprio/cmd"
)

var (
	version   string
	commit    string
	date      string
	buildType string = "unclassified"

	osExit = os.Exit
)

func main() {
	osExit(cmd.Execute(os.Args, cmd.BuildArgs{
		Version:   version,
		Commit:    commit,
		Date:      date,
		BuildType: buildType,
	}))
}
