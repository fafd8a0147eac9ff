package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/holefit/pkg/errors"
)

// checkCommand creates the check command for validating a placement.
func (c *CLI) checkCommand() *cobra.Command {
	var src source
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [problem]",
		Short: "Validate a placement and print its dislikes",
		Long: `Check reports the edges that violate their length tolerance, the edges that
cross the hole boundary, the vertices outside the hole and the dislikes score.

Without --solution or --stored the figure's original placement is checked.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, args[0], src, strict)
		},
	}

	cmd.Flags().StringVarP(&src.file, "solution", "s", "", "solution file to check")
	cmd.Flags().StringVar(&src.stored, "stored", "", "stored solution name to check")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the placement is not submittable")
	cmd.MarkFlagsMutuallyExclusive("solution", "stored")

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, path string, src source, strict bool) error {
	p, sol, err := c.loadProblem(cmd, path, src)
	if err != nil {
		return err
	}
	s, err := c.newSession(p, sol, 0, 0)
	if err != nil {
		return err
	}

	st := s.Stats()
	printStats(st)
	printNewline()
	printReport(st)

	if strict && !st.Submittable {
		return errors.New(errors.ErrCodeNotSubmittable, "placement is not submittable")
	}
	if !st.Submittable {
		printNewline()
		printNextStep("Run the solver", "holefit solve "+path)
	}
	return nil
}
