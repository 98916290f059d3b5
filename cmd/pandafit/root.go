package main

import (
	"io"
	"os"
	"time"

	"github.com/miguelofoliveir/pandafit-frontend/internal/backend"
	"github.com/miguelofoliveir/pandafit-frontend/internal/logging"
	"github.com/miguelofoliveir/pandafit-frontend/internal/querycache"
	"github.com/miguelofoliveir/pandafit-frontend/internal/retry"
	"github.com/miguelofoliveir/pandafit-frontend/internal/session"
	"github.com/miguelofoliveir/pandafit-frontend/internal/tracker"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	cliQueryCacheSize = 1024 * 1024
	cliQueryCacheTTL  = 30 * time.Second
)

type cliOptions struct {
	backendURL  string
	sessionFile string
	timezone    string
	timeout     time.Duration
	logLevel    string
}

// app is what every command works with, built before the command runs.
type app struct {
	session *session.Session
	client  *backend.Client
	tracker *tracker.Service
	out     io.Writer
}

func (a *app) requireLogin() error {
	if !a.session.IsAuthenticated() {
		return session.ErrNotLoggedIn
	}
	return nil
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "pandafit",
		Short:         "pandafit tracks workouts, exercises and meals from your terminal",
		Long:          "pandafit shows the PandaFit dashboard, workouts, exercises, diet and history, and marks items as done.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd, opts)
		},
	}

	backendURL := os.Getenv("PANDAFIT_BACKEND_URL")
	if backendURL == "" {
		backendURL = backend.DefaultBaseURL
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.backendURL, "backend", backendURL, "PandaFit backend base URL (env PANDAFIT_BACKEND_URL)")
	flags.StringVar(&opts.sessionFile, "session-file", "", "path of the session file (default ~/.pandafit/session.json)")
	flags.StringVar(&opts.timezone, "timezone", "UTC", "IANA time zone used to cut calendar days")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "backend request timeout")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level [trace | debug | info | warn | error]")

	rootCmd.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newDashboardCmd(a),
		newWorkoutsCmd(a),
		newExercisesCmd(a),
		newDietCmd(a),
		newHistoryCmd(a),
		newDoneCmd(a),
		newResetCmd(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, opts *cliOptions) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(logging.GetLevel(opts.logLevel))

	location, err := time.LoadLocation(opts.timezone)
	if err != nil {
		return err
	}

	sessionFile := opts.sessionFile
	if sessionFile == "" {
		if sessionFile, err = session.DefaultPath(); err != nil {
			return err
		}
	}
	log.Debugf("using session file: %s", sessionFile)

	a.session = session.New(session.NewFileStore(sessionFile))
	if err := a.session.Init(cmd.Context()); err != nil {
		return err
	}

	a.client = backend.NewClient(
		opts.backendURL,
		opts.timeout,
		backend.WithTokenSource(a.session),
	)
	a.tracker = tracker.NewService(
		a.client,
		querycache.New(cliQueryCacheSize, cliQueryCacheTTL, nil),
		retry.DefaultPolicy,
		location,
		nil,
	)
	a.out = cmd.OutOrStdout()
	return nil
}
