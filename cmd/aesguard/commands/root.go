package commands

import (
	"github.com/spf13/cobra"

	"aesguard/internal/app"
	"aesguard/internal/logging"
)

var (
	logLevel  string
	logFormat string
	appCtx    *app.App
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "aesguard",
		Short:        "Raw AES block primitive with secure erasure",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			format, err := logging.ParseFormat(logFormat)
			if err != nil {
				return err
			}
			appCtx = app.New(app.Config{
				LogLevel:  level,
				LogFormat: format,
				LogOutput: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json)")

	root.AddCommand(encryptCmd(), decryptCmd(), kcvCmd(), selftestCmd())
	return root
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}
