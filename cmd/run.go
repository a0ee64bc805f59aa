package cmd

import (
	"context"
	"os"

	"github.com/urfave/cli"
	"github.com/warpdl/sizeprio/common"
	"github.com/warpdl/sizeprio/internal/hook"
	"github.com/warpdl/sizeprio/internal/priority"
	"github.com/warpdl/sizeprio/pkg/logger"
	"github.com/warpdl/sizeprio/pkg/nzbrpc"
)

var (
	lookupEnv hook.LookupFunc = os.LookupEnv
	dial                      = nzbrpc.Dial
	newLogger                 = func() logger.Logger { return logger.NewConsoleLogger() }
)

// runHook handles one NZBGet queue event and returns the exit code.
func runHook(_ *cli.Context) int {
	log := newLogger()
	defer log.Close()

	ladder, transport, err := hookSettings()
	if err != nil {
		// Settings only matter for events the hook acts on.
		if _, outcome, gateErr := hook.Gate(lookupEnv); outcome != hook.OutcomeSuccess {
			return exitCode(log, outcome, gateErr)
		}
		log.Error("%v", err)
		return common.ExitError
	}
	h := hook.New(ladder, func(c nzbrpc.Credentials) (nzbrpc.Client, error) {
		return dial(c, transport)
	}, log)
	outcome, err := h.Run(context.Background(), lookupEnv)
	return exitCode(log, outcome, err)
}

func hookSettings() (*priority.Ladder, nzbrpc.Transport, error) {
	ladder, err := buildLadder()
	if err != nil {
		return nil, "", err
	}
	transport, err := nzbrpc.ParseTransport(transportName)
	if err != nil {
		return nil, "", err
	}
	return ladder, transport, nil
}

// exitCode reports err, if any, and maps the outcome to a process status.
func exitCode(log logger.Logger, outcome hook.Outcome, err error) int {
	switch outcome {
	case hook.OutcomeSuccess:
		return common.ExitSuccess
	case hook.OutcomeSkipped:
		return common.ExitNone
	case hook.OutcomeInvalid:
		log.Error("%v", err)
		log.Info("sizeprio is an NZBGet queue script and must be started by NZBGet 15.0 or later")
		return common.ExitInvalidInvocation
	}
	log.Error("%v", err)
	return common.ExitError
}
