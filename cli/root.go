package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries per-invocation state shared by the subcommands.
type app struct {
	vp  *viper.Viper
	log *slog.Logger
}

// NewRootCmd builds a fresh command tree. Each call owns its own viper
// instance and logger, so trees may run concurrently.
func NewRootCmd() *cobra.Command {
	ap := &app{
		vp:  newViper(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := &cobra.Command{
		Use:   "multidigest",
		Short: "Compute MD5, SHA-1, SHA-256 and SHA-512 of a file in one pass",
		Long: `multidigest reads a file once and reports its MD5, SHA-1,
SHA-256 and SHA-512 digests together with the time taken.

Settings come from flags, then MULTIDIGEST_* environment variables,
then the file given with --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return ap.setupLogger(cmd)
		},
	}

	root.PersistentFlags().String(
		"config", "",
		"config file (yaml, json or toml)",
	)
	root.PersistentFlags().BoolP(
		"verbose", "v", false,
		"log debug details to stderr",
	)

	root.AddCommand(
		newDigCmd(ap),
		newMultiplyCmd(ap),
	)

	return root
}

// setupLogger points the logger at the command's stderr with the level
// selected by --verbose or MULTIDIGEST_VERBOSE.
func (ap *app) setupLogger(cmd *cobra.Command) error {
	if fl := cmd.Flags().Lookup("verbose"); fl != nil {
		if err := ap.vp.BindPFlag("verbose", fl); err != nil {
			return err
		}
	}

	level := slog.LevelInfo
	if ap.vp.GetBool("verbose") {
		level = slog.LevelDebug
	}

	ap.log = slog.New(slog.NewTextHandler(
		cmd.ErrOrStderr(),
		&slog.HandlerOptions{Level: level},
	))

	return nil
}
