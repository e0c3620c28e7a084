package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pageza/recipebox/internal/model"
)

func newUsersCmd() *cobra.Command {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Inspect accounts",
	}
	usersCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List accounts without their passwords",
		Args:  cobra.NoArgs,
		RunE: withServices(func(cmd *cobra.Command, _ []string, svc *services) error {
			users, err := svc.users.List(cmd.Context())
			if err != nil {
				return err
			}
			public := make([]model.PublicUser, 0, len(users))
			for _, u := range users {
				public = append(public, u.Public())
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), public)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tUSERNAME\tEMAIL\tFAVORITES\tCREATED")
			for _, u := range public {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", u.ID, u.Username, u.Email, len(u.Favorites), len(u.CreatedRecipes))
			}
			return tw.Flush()
		}),
	})
	return usersCmd
}

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: withServices(func(cmd *cobra.Command, _ []string, svc *services) error {
			user, err := svc.users.CurrentSession(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				if user == nil {
					return writeJSON(cmd.OutOrStdout(), nil)
				}
				return writeJSON(cmd.OutOrStdout(), user.Public())
			}
			if user == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "guest (no one signed in)")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (%s)\n", user.Username, user.Email, user.ID)
			return nil
		}),
	}
}
