package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/recruitdb/internal/store"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <table>",
		Short: "List the rows of one table",
		Long: `List the projected rows of one table, ordered by id.

Tables: ` + strings.Join(store.TableNames(), ", ") + `

Example:
  recruitdb list candidates
  recruitdb list invoices --format json`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: store.TableNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}
}

// listResult is the list payload.
type listResult struct {
	Table string `json:"table"`
	Count int    `json:"count"`
	Rows  []any  `json:"rows"`
}

func (r listResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d rows", r.Table, r.Count)
	for _, row := range r.Rows {
		data, err := json.Marshal(row)
		if err != nil {
			fmt.Fprintf(&b, "\n  <unprintable: %v>", err)
			continue
		}
		fmt.Fprintf(&b, "\n  %s", data)
	}
	return b.String()
}

func runList(opts *RootOptions, table string, cmd *cobra.Command) error {
	if _, err := store.Lookup(table); err != nil {
		return WrapExitError(ExitCommandError, "invalid table", err)
	}

	ws, err := openWorkspace(opts, cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	coll, err := ws.data.Collection(table)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid table", err)
	}

	rows := coll.Records()
	return formatter(opts, cmd).Success(listResult{Table: coll.Name(), Count: len(rows), Rows: rows})
}
