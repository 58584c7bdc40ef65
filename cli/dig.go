package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/byte4ever/multidigest/digester"
	"github.com/byte4ever/multidigest/render"
)

func newDigCmd(ap *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dig PATH",
		Short: "Digest one file",
		Long: `Reads PATH once and prints its MD5, SHA-1, SHA-256 and SHA-512
digests with the elapsed time. The html format reproduces the block
shown by the desktop UI.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ap.runDig(cmd, args[0])
		},
	}

	cmd.Flags().StringP(
		"format", "f", string(render.FormatText),
		"output format: html, text, json or yaml",
	)
	cmd.Flags().Int(
		"chunk-size", digester.DefaultChunkSize,
		"read size in bytes",
	)
	cmd.Flags().StringP(
		"output", "o", "",
		"write the result to this file instead of stdout",
	)

	return cmd
}

func (ap *app) runDig(cmd *cobra.Command, path string) error {
	const errCtx = "dig"

	cfg, err := loadConfig(ap.vp, cmd.Flags())
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	fo, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	ap.log.Debug(
		"digesting",
		"path", path,
		"chunk_size", cfg.ChunkSize,
		"format", fo,
	)

	dg := digester.Digester{ChunkSize: cfg.ChunkSize}

	re, err := dg.Compute(path)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	ap.log.Debug(
		"digest computed",
		"path", re.Path,
		"size", re.Size,
		"elapsed", re.Elapsed(),
	)

	out, err := render.Render(fo, re)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if cfg.Output != "" {
		err = os.WriteFile( //nolint:gosec // path from CLI flag
			cfg.Output, []byte(out), 0o644,
		)
		if err != nil {
			return fmt.Errorf(
				"%s: writing output: %w",
				errCtx, err,
			)
		}

		ap.log.Info("result written", "output", cfg.Output)

		return nil
	}

	if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf(
			"%s: writing to stdout: %w",
			errCtx, err,
		)
	}

	return nil
}
