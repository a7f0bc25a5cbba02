package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/terno-lang/terno/internal/config"
	"github.com/terno-lang/terno/internal/exitcode"
	"github.com/terno-lang/terno/internal/flagger"
)

var version = "dev"

var exitFn = exitcode.Exit

func main() {
	exitFn(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run loads configuration, dispatches args and translates the resulting job.
// Help text and command output go to stdout, diagnostics and logs to stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) exitcode.Code {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	cfg, cfgErr := config.LoadConfig(v)
	if cfgErr != nil {
		cfg = config.Default()
	}

	logs, err := SetupLogger(stderr, cfg)
	if err != nil {
		fallback := config.Default()
		logs, _ = SetupLogger(stderr, fallback)
		logs.Logger.Warn("log file unavailable, logging to stderr", "path", cfg.Log.File, "error", err)
	}
	defer func() { _ = logs.Close() }()
	logger := logs.Logger

	if cfgErr != nil {
		logger.Warn("load config failed, using defaults", "error", cfgErr)
	}
	logger.Debug("terno starting",
		"version", version,
		"config", v.GetString(KeyConfig),
		"log_file", logs.FilePath,
	)

	var job flagger.Job
	rootCmd := &cobra.Command{
		Use:   "terno",
		Short: "Front-end for the terno language",
		Long: `terno dispatches on its first argument: help, run, tokens, parse,
scopes or version. Run "terno help" for details.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, argv []string) error {
			d := flagger.New(stdout,
				flagger.WithLogger(logger),
				flagger.WithVersion(version),
			)
			job = d.Dispatch(cmd.Context(), flagger.ParseArgs(argv))
			return nil
		},
	}
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error("command failed", "error", err)
		return exitcode.Code{Value: flagger.CodeUnrecognized}
	}

	code := exitcode.Translate(stderr, job)
	if job.Err != nil {
		logger.Info("job failed",
			slog.String("flag", job.Flag),
			slog.String("outcome", job.Outcome.String()),
			slog.Any("error", job.Err),
		)
	}
	return code
}
