package cmd

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"
	"github.com/warpdl/sizeprio/pkg/nzbrpc"
)

func classify(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	ladder, err := buildLadder()
	if err != nil {
		return err
	}
	for _, arg := range ctx.Args() {
		size, err := strconv.ParseFloat(arg, 64)
		if err != nil || size < 0 {
			return fmt.Errorf("classify: %q is not a size in MB", arg)
		}
		label := ladder.Classify(size)
		fmt.Printf("%.2f MB\t%s (%s)\n", size, label, nzbrpc.PriorityValue(label))
	}
	return nil
}
