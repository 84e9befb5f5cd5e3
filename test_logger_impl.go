package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
)

var (
	consoleFailed  = color.New(color.FgRed).SprintFunc()
	consoleErrored = color.New(color.FgMagenta).SprintFunc()
	consoleSkipped = color.New(color.FgYellow).SprintFunc()
)

type ConsoleTestLogger struct {
	// Out defaults to os.Stdout.
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(c.out(), "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, status framework.TestStatus,
	debugOutput framework.CapturedOutput) {
	failed := status != framework.StatusPassed
	switch status {
	case framework.StatusFailed:
		fmt.Fprintf(c.out(), "  %s: %s\n", consoleFailed("FAILED"), id)
	case framework.StatusErrored:
		fmt.Fprintf(c.out(), "  %s: %s\n", consoleErrored("ERRORED"), id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.out(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		fmt.Fprintf(c.out(), "  %s: %s\n", consoleSkipped("SKIPPED"), id)
	} else {
		fmt.Fprintf(c.out(), "  %s: %s (%s)\n", consoleSkipped("SKIPPED"), id, reason)
	}
}
