package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the sample catalog if the store has none",
		Long: `Seed writes the 50 sample recipes when no catalog is stored yet.
An existing catalog, even an empty one, is left alone unless --reset is given.`,
		RunE: withServices(func(cmd *cobra.Command, _ []string, svc *services) error {
			if reset {
				if err := svc.recipes.Reset(cmd.Context()); err != nil {
					return err
				}
				svc.logger.Info("catalog reset")
			}
			recipes, err := svc.recipes.LoadAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog holds %d recipes\n", len(recipes))
			return nil
		}),
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "discard the stored catalog and reseed")
	return cmd
}
