package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/drawdeck/drawdeck/pkg/shapes"
)

// shapesCommand creates the shapes command group for inspecting the shape
// catalog without starting a server.
func (c *CLI) shapesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Inspect the shape catalog",
	}

	cmd.AddCommand(c.shapesCategoriesCommand())
	cmd.AddCommand(c.shapesListCommand())
	cmd.AddCommand(c.shapesSearchCommand())
	cmd.AddCommand(c.shapesGetCommand())

	return cmd
}

// catalogForCommand loads configuration and returns a ready catalog.
func (c *CLI) catalogForCommand(cmd *cobra.Command) (*shapes.Catalog, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	catalog, err := newCatalog(cmd.Context(), cfg.Catalog)
	if err != nil {
		return nil, err
	}
	if err := catalog.Initialize(cmd.Context()); err != nil {
		return nil, fmt.Errorf("initialize shape catalog: %w", err)
	}
	return catalog, nil
}

func (c *CLI) shapesCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List shape categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.catalogForCommand(cmd)
			if err != nil {
				return err
			}
			cats, err := catalog.Categories()
			if err != nil {
				return err
			}
			for _, cat := range cats {
				fmt.Println(cat)
			}
			return nil
		},
	}
}

func (c *CLI) shapesListCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.catalogForCommand(cmd)
			if err != nil {
				return err
			}
			list, err := catalog.List(category)
			if err != nil {
				return err
			}
			for _, s := range list {
				printShapeLine(s)
			}
			printDetail("%d shapes", len(list))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "only this category")
	return cmd
}

func (c *CLI) shapesSearchCommand() *cobra.Command {
	var (
		limit       int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search shapes by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.catalogForCommand(cmd)
			if err != nil {
				return err
			}
			results, err := catalog.Search(args[0], limit)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				printInfo("No shapes match %q", args[0])
				return nil
			}

			if interactive {
				model := newShapeListModel(results)
				final, err := tea.NewProgram(model).Run()
				if err != nil {
					return err
				}
				if m, ok := final.(shapeListModel); ok && m.selected != nil {
					printShape(*m.selected)
				}
				return nil
			}

			for _, s := range results {
				printShapeLine(s)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum results")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick from results interactively")
	return cmd
}

func (c *CLI) shapesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one shape, including its style string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := c.catalogForCommand(cmd)
			if err != nil {
				return err
			}
			s, err := catalog.Get(args[0])
			if err != nil {
				return err
			}
			printShape(s)
			return nil
		},
	}
}

func printShapeLine(s shapes.Shape) {
	fmt.Println(StyleValue.Render(s.Name) + " " + StyleDim.Render("("+s.Category+")"))
}

func printShape(s shapes.Shape) {
	printKeyValue("name", s.Name)
	printKeyValue("category", s.Category)
	printKeyValue("style", s.Style)
	if len(s.Aliases) > 0 {
		printKeyValue("aliases", fmt.Sprintf("%v", s.Aliases))
	}
	if s.Description != "" {
		printKeyValue("description", s.Description)
	}
}
