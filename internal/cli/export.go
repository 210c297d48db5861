package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the durable snapshot",
		Long: `Print the durable snapshot exactly as stored: canonical JSON with one
array of rows per table.

Example:
  recruitdb export
  recruitdb export -o snapshot.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the snapshot to a file instead of stdout")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	ws, err := openWorkspace(opts.RootOptions, cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	raw, ok, err := ws.data.Export(commandContext(cmd))
	if err != nil {
		return WrapExitError(ExitFailure, "failed to read snapshot", err)
	}
	if !ok {
		return NewExitError(ExitFailure, "no durable snapshot")
	}

	out := formatter(opts.RootOptions, cmd)
	if opts.Output != "" {
		if err := os.WriteFile(opts.Output, []byte(raw), 0o644); err != nil {
			return WrapExitError(ExitCommandError, "failed to write snapshot", err)
		}
		ws.logger.Debug("snapshot written", "path", opts.Output, "bytes", len(raw))
		return out.Success(fmt.Sprintf("Snapshot written to %s", opts.Output))
	}

	if opts.Format == "json" {
		return out.Success(json.RawMessage(raw))
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), raw)
	return err
}
