package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/recruitdb/internal/agency"
	"github.com/roach88/recruitdb/internal/store"
)

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear every table and reload the baseline",
		Long: `Clear every table, including website content, and reload the baseline
dataset. Session slots are kept.

Example:
  recruitdb reset`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaintenance(rootOpts, cmd, "reset", (*agency.Data).Reset)
		},
	}
}

// NewWipeCommand creates the wipe command.
func NewWipeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "wipe",
		Short: "Empty the operational tables",
		Long: `Empty the core operational tables without reseeding. Website content
(web pages, blog posts, testimonials, team members) is kept.

Example:
  recruitdb wipe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaintenance(rootOpts, cmd, "wipe", (*agency.Data).ClearAll)
		},
	}
}

// tableCounts is the row count per table after a maintenance operation.
type tableCounts struct {
	Operation string         `json:"operation"`
	Tables    map[string]int `json:"tables"`
	Total     int            `json:"total"`
}

func (c tableCounts) String() string {
	return fmt.Sprintf("%s complete: %d rows across %d tables", c.Operation, c.Total, len(c.Tables))
}

func runMaintenance(opts *RootOptions, cmd *cobra.Command, op string, apply func(*agency.Data, context.Context) error) error {
	ws, err := openWorkspace(opts, cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := apply(ws.data, commandContext(cmd)); err != nil {
		return WrapExitError(ExitFailure, op+" failed", err)
	}

	counts := tableCounts{Operation: op, Tables: make(map[string]int)}
	for _, name := range store.TableNames() {
		coll, err := ws.data.Collection(name)
		if err != nil {
			return WrapExitError(ExitFailure, op+" failed", err)
		}
		counts.Tables[name] = coll.Len()
		counts.Total += coll.Len()
	}
	return formatter(opts, cmd).Success(counts)
}
