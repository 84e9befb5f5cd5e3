package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/reqres-contract-tests/reqres-contract-tests/framework"
	"github.com/reqres-contract-tests/reqres-contract-tests/reqrestests"
	"github.com/reqres-contract-tests/reqres-contract-tests/reqrestwin"
)

const defaultTwinPort = 8111
const twinShutdownTimeout = time.Second * 5

// errTestsFailed is returned when the run completed but not every test passed. The results
// have already been printed, so main only needs to set the exit status.
var errTestsFailed = errors.New("one or more tests failed")

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errTestsFailed) {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var params commandParams
	cmd := &cobra.Command{
		Use:   "reqres-contract-tests",
		Short: "Run the contract test suite against the user/resource API",
		Long: `Run the contract test suite against the user/resource API.

Every test sends one request and checks the status code, and where relevant the
shape and content of the JSON body. The service is configured with the
REQRES_BASE_URL, REQRES_API_KEY, REQRES_API_KEY_HEADER, REQRES_REQUEST_TIMEOUT
and REQRES_USER_AGENT environment variables; flags take precedence.

Example:
  reqres-contract-tests --url http://localhost:8111 --run users --debug`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(&params, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	params.bind(cmd)
	cmd.AddCommand(newTwinCommand())
	return cmd
}

func runTests(params *commandParams, out, errOut io.Writer) error {
	if err := params.validate(); err != nil {
		return err
	}
	if params.noColor {
		color.NoColor = true
	}

	config, err := framework.LoadConfig()
	if err != nil {
		return err
	}
	config = params.applyTo(config)

	// With JSON results, everything else goes to stderr so that stdout is a single document.
	progress := out
	if params.format == formatJSON {
		progress = errOut
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = framework.NewWriterLogger(progress, "")
	}

	harness, err := framework.NewTestHarness(config, mainDebugLogger)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !params.skipProbe {
		if err := harness.CheckService(progress); err != nil {
			return err
		}
	}

	fmt.Fprintln(progress)
	framework.PrintFilterDescription(progress, params.filters)

	fmt.Fprintln(progress, "Running test suite")

	testLogger := &ConsoleTestLogger{
		Out:                  progress,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := reqrestests.RunTestSuite(harness, params.filters.AsFilter, testLogger)

	if params.format == formatJSON {
		if err := framework.WriteJSONResults(out, results); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out)
		framework.PrintResults(out, results)
	}
	if !results.OK() {
		return errTestsFailed
	}
	return nil
}

func newTwinCommand() *cobra.Command {
	var params twinParams
	cmd := &cobra.Command{
		Use:   "twin",
		Short: "Serve a local imitation of the API",
		Long: `Serve a local imitation of the API, with the same fixed data set, for
developing the tests without depending on the public service.

Example:
  reqres-contract-tests twin --port 8111 --delay-unit 100ms`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTwin(cmd.Context(), &params, cmd.ErrOrStderr())
		},
	}
	params.bind(cmd)
	return cmd
}

func runTwin(ctx context.Context, params *twinParams, logOut io.Writer) error {
	logger := framework.NewWriterLogger(logOut, "[twin] ")
	handler, err := reqrestwin.NewHandler(reqrestwin.Options{
		APIKey:    params.apiKey,
		DelayUnit: params.delayUnit,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", params.port),
		Handler:           handler,
		ReadHeaderTimeout: time.Second * 10,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()
	logger.Printf("Listening on port %d", params.port)

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Printf("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), twinShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
