// Command recipectl inspects and maintains the recipe box store.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pageza/recipebox/config"
	"github.com/pageza/recipebox/internal/database"
	"github.com/pageza/recipebox/internal/kv"
	"github.com/pageza/recipebox/internal/logging"
	"github.com/pageza/recipebox/internal/service"
)

var jsonOutput bool

// services bundles what every subcommand works with.
type services struct {
	store   kv.Store
	recipes *service.RecipeService
	users   *service.UserService
	logger  *logrus.Logger
}

// openServices connects the configured store. Tests replace it.
var openServices = func(ctx context.Context) (*services, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.NewLogger(cfg.Env, cfg.LogLevel)
	logger.SetOutput(os.Stderr)

	store, err := database.OpenStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.StoreBackend, err)
	}
	opts := service.ConfigOptions(cfg)
	return &services{
		store:   store,
		recipes: service.NewRecipeService(store, opts...),
		users:   service.NewUserService(store, opts...),
		logger:  logger,
	}, nil
}

// withServices opens the store for one command run and closes it afterwards.
func withServices(fn func(cmd *cobra.Command, args []string, svc *services) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := openServices(cmd.Context())
		if err != nil {
			return err
		}
		defer svc.store.Close()
		return fn(cmd, args, svc)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "recipectl",
		Short: "Inspect and maintain the recipe box store",
		Long: `recipectl works directly against the configured key-value store
(STORE_BACKEND and friends, same as the API server).

Available commands:
  seed     - Write the sample catalog
  recipes  - Search and show recipes
  users    - List accounts
  session  - Show the signed-in account`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(newSeedCmd(), newRecipesCmd(), newUsersCmd(), newSessionCmd())
	return rootCmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
