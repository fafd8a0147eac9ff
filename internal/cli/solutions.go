package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	holeio "github.com/matzehuels/holefit/pkg/io"
	"github.com/matzehuels/holefit/pkg/store"
)

// solutionsCommand creates the solution store management command.
func (c *CLI) solutionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "solutions",
		Aliases: []string{"sol"},
		Short:   "Manage stored solutions",
	}

	cmd.AddCommand(c.solutionsListCommand())
	cmd.AddCommand(c.solutionsExportCommand())
	cmd.AddCommand(c.solutionsDeleteCommand())
	cmd.AddCommand(c.solutionsPathCommand())

	return cmd
}

// solutionsListCommand creates the "solutions list" subcommand.
func (c *CLI) solutionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [problem]",
		Short: "List stored solutions, for one problem or all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore()
			if err != nil {
				return err
			}

			problems := args
			if len(problems) == 0 {
				if problems, err = st.Problems(cmd.Context()); err != nil {
					return err
				}
			}

			total := 0
			for _, problem := range problems {
				entries, err := st.List(cmd.Context(), holeio.ProblemID(problem))
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					continue
				}
				printEntries(problem, entries)
				total += len(entries)
			}
			if total == 0 {
				printInfo("No stored solutions")
				printDetail("Directory: %s", st.Path())
			}
			return nil
		},
	}
}

func printEntries(problem string, entries []store.Entry) {
	fmt.Println(StyleTitle.Render(problem))
	for _, e := range entries {
		fmt.Printf("  %-12s %s %s\n",
			StyleValue.Render(e.Name),
			StyleDim.Render(fmt.Sprintf("%8s", formatSize(e.Size))),
			StyleDim.Render(formatRelativeTime(e.ModTime)))
	}
}

// solutionsExportCommand creates the "solutions export" subcommand.
func (c *CLI) solutionsExportCommand() *cobra.Command {
	var output string
	var compact bool

	cmd := &cobra.Command{
		Use:   "export [problem] [name]",
		Short: "Write a stored solution to a file or stdout",
		Long: `Export writes a stored solution. With --compact the coordinates are rounded
and fixed points dropped, which is the form accepted for submission.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore()
			if err != nil {
				return err
			}
			sol, err := st.Load(cmd.Context(), holeio.ProblemID(args[0]), args[1])
			if err != nil {
				return err
			}

			if compact {
				data, err := holeio.CompactSolution(*sol)
				if err != nil {
					return err
				}
				data = append(data, '\n')
				if output == "" {
					_, err = os.Stdout.Write(data)
					return err
				}
				if err := os.WriteFile(output, data, 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
			} else {
				if output == "" {
					return holeio.WriteSolution(*sol, os.Stdout)
				}
				if err := holeio.ExportSolution(*sol, output); err != nil {
					return err
				}
			}

			printSuccess("Exported %s", StyleHighlight.Render(args[1]))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&compact, "compact", false, "round coordinates and drop fixed points")

	return cmd
}

// solutionsDeleteCommand creates the "solutions delete" subcommand.
func (c *CLI) solutionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [problem] [name...]",
		Aliases: []string{"rm"},
		Short:   "Delete stored solutions",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore()
			if err != nil {
				return err
			}
			problem := holeio.ProblemID(args[0])
			for _, name := range args[1:] {
				if err := st.Delete(cmd.Context(), problem, name); err != nil {
					return err
				}
			}
			printSuccess("Deleted %d solutions", len(args)-1)
			return nil
		},
	}
}

// solutionsPathCommand creates the "solutions path" subcommand.
func (c *CLI) solutionsPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the solution store directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.newStore()
			if err != nil {
				return err
			}
			fmt.Println(st.Path())
			return nil
		},
	}
}
