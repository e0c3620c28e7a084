package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pageza/recipebox/internal/model"
)

func newRecipesCmd() *cobra.Command {
	recipesCmd := &cobra.Command{
		Use:   "recipes",
		Short: "Search and show recipes",
	}

	searchCmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search titles, descriptions, categories and tags",
		Args:  cobra.MaximumNArgs(1),
		RunE: withServices(func(cmd *cobra.Command, args []string, svc *services) error {
			term := strings.Join(args, " ")
			recipes, err := svc.recipes.Search(cmd.Context(), term)
			if err != nil {
				return err
			}
			return printRecipes(cmd.OutOrStdout(), recipes)
		}),
	}

	categoryCmd := &cobra.Command{
		Use:   "category <name>",
		Short: "List recipes in a category",
		Args:  cobra.ExactArgs(1),
		RunE: withServices(func(cmd *cobra.Command, args []string, svc *services) error {
			recipes, err := svc.recipes.FindByCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printRecipes(cmd.OutOrStdout(), recipes)
		}),
	}

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: withServices(func(cmd *cobra.Command, args []string, svc *services) error {
			recipe, err := svc.recipes.FindByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if recipe == nil {
				return fmt.Errorf("recipe %q not found", args[0])
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), recipe)
			}
			printRecipe(cmd.OutOrStdout(), *recipe)
			return nil
		}),
	}

	recipesCmd.AddCommand(searchCmd, categoryCmd, showCmd)
	return recipesCmd
}

func printRecipes(w io.Writer, recipes []model.Recipe) error {
	if jsonOutput {
		return writeJSON(w, recipes)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDIFFICULTY\tMINUTES\tCATEGORY")
	for _, r := range recipes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", r.ID, r.Title, r.Difficulty, r.TotalTime(), strings.Join(r.Category, ", "))
	}
	return tw.Flush()
}

func printRecipe(w io.Writer, r model.Recipe) {
	fmt.Fprintf(w, "%s (%s)\n%s\n\n", r.Title, r.ID, r.Description)
	fmt.Fprintf(w, "Prep %d min, cook %d min, serves %d, %s\n", r.PrepTime, r.CookTime, r.Servings, r.Difficulty)
	fmt.Fprintf(w, "Categories: %s\n", strings.Join(r.Category, ", "))
	if len(r.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(r.Tags, ", "))
	}
	fmt.Fprintln(w, "\nIngredients:")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", ing)
	}
	fmt.Fprintln(w, "\nInstructions:")
	for i, step := range r.Instructions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}
