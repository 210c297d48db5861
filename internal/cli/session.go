package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/recruitdb/internal/session"
)

// NewSessionCommand creates the session command and its subcommands.
func NewSessionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Show the logged-in identities",
		Long: `Show the four session slots: the administrator flag and the client,
candidate and agent logged in on this store.

Example:
  recruitdb session
  recruitdb session logout client`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionShow(rootOpts, cmd)
		},
	}

	cmd.AddCommand(newSessionLogoutCommand(rootOpts))
	cmd.AddCommand(newSessionLoginAdminCommand(rootOpts))

	return cmd
}

func newSessionLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	roles := make([]string, len(session.Roles))
	for i, r := range session.Roles {
		roles[i] = string(r)
	}

	return &cobra.Command{
		Use:       "logout <" + strings.Join(roles, "|") + ">",
		Short:     "Clear one session slot",
		Args:      cobra.ExactArgs(1),
		ValidArgs: roles,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionLogout(rootOpts, args[0], cmd)
		},
	}
}

func newSessionLoginAdminCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login-admin",
		Short: "Set the administrator flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(rootOpts, cmd)
			if err != nil {
				return err
			}
			defer ws.Close()

			if err := ws.data.LoginAdmin(commandContext(cmd)); err != nil {
				return WrapExitError(ExitFailure, "login failed", err)
			}
			return formatter(rootOpts, cmd).Success(sessionView(ws.data.Sessions()))
		},
	}
}

// sessionView renders session.State as text.
type sessionView session.State

func (v sessionView) String() string {
	admin, client, candidate, agent := "logged out", "-", "-", "-"
	if v.Admin {
		admin = "logged in"
	}
	if v.Client != nil {
		client = fmt.Sprintf("%s (%s)", v.Client.ID, v.Client.CompanyName)
	}
	if v.Candidate != nil {
		candidate = fmt.Sprintf("%s (%s)", v.Candidate.ID, v.Candidate.Name)
	}
	if v.Agent != nil {
		agent = fmt.Sprintf("%s (%s)", v.Agent.ID, v.Agent.AgencyName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %s\n", "admin", admin)
	fmt.Fprintf(&b, "%-10s %s\n", "client", client)
	fmt.Fprintf(&b, "%-10s %s\n", "candidate", candidate)
	fmt.Fprintf(&b, "%-10s %s", "agent", agent)
	return b.String()
}

func runSessionShow(opts *RootOptions, cmd *cobra.Command) error {
	ws, err := openWorkspace(opts, cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	return formatter(opts, cmd).Success(sessionView(ws.data.Sessions()))
}

func runSessionLogout(opts *RootOptions, name string, cmd *cobra.Command) error {
	role, err := session.ParseRole(name)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid role", err)
	}

	ws, err := openWorkspace(opts, cmd)
	if err != nil {
		return err
	}
	defer ws.Close()

	if err := ws.data.Logout(commandContext(cmd), role); err != nil {
		return WrapExitError(ExitFailure, "logout failed", err)
	}
	return formatter(opts, cmd).Success(sessionView(ws.data.Sessions()))
}
