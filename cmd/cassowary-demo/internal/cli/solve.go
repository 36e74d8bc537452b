package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-tableau/cassowary"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solves a small padded-box constraint system and prints the result.",
	Long: `solve builds four variables (x, y, w, h) constrained to sit at least
"padding" cells inside a screen of the given width and height, then suggests
a new padding and prints both solutions.`,
	Run: runSolve,
}

func init() {
	solveCmd.Flags().Int("width", 800, "screen width")
	solveCmd.Flags().Int("height", 600, "screen height")
	solveCmd.Flags().Int("padding", 30, "initial padding")
	solveCmd.Flags().Int("resuggest-padding", 50, "padding to suggest after the first solve")
}

func runSolve(cmd *cobra.Command, args []string) {
	s := cassowary.NewSolver(cassowary.WithLogger(log))

	sw := cassowary.NewVariable("screen_width")
	sh := cassowary.NewVariable("screen_height")
	padding := cassowary.NewVariable("padding")
	x, y := cassowary.NewVariable("x"), cassowary.NewVariable("y")
	w, h := cassowary.NewVariable("w"), cassowary.NewVariable("h")

	must := func(err error) {
		if err != nil {
			fmt.Println("error:", err)
		}
	}

	must(s.AddEditVariable(sw, cassowary.Strong))
	must(s.AddEditVariable(sh, cassowary.Strong))
	must(s.AddEditVariable(padding, cassowary.Strong))

	must(s.SuggestValue(sw, float64(GetInt(cmd, "width"))))
	must(s.SuggestValue(sh, float64(GetInt(cmd, "height"))))
	must(s.SuggestValue(padding, float64(GetInt(cmd, "padding"))))

	must(s.AddConstraint(cassowary.GreaterThanEqual(cassowary.Required).VariableLHS(x).VariableRHS(padding)))
	must(s.AddConstraint(cassowary.LessThanEqual(cassowary.Required).ExpressionLHS(cassowary.NewExpression(0, x.T(1), w.T(1), padding.T(1))).ExpressionRHS(cassowary.Sub(cassowary.NewExpression(0, sw.T(1)), cassowary.NewExpression(1)))))
	must(s.AddConstraint(cassowary.GreaterThanEqual(cassowary.Required).VariableLHS(y).VariableRHS(padding)))
	must(s.AddConstraint(cassowary.LessThanEqual(cassowary.Required).ExpressionLHS(cassowary.NewExpression(0, y.T(1), h.T(1), padding.T(1))).ExpressionRHS(cassowary.Sub(cassowary.NewExpression(0, sh.T(1)), cassowary.NewExpression(1)))))

	s.UpdateVariables()
	printSolution(x, y, w, h, padding)

	newPadding := float64(GetInt(cmd, "resuggest-padding"))
	if err := s.SuggestValue(padding, newPadding); err != nil {
		fmt.Println("error:", err)
		return
	}

	s.UpdateVariables()
	fmt.Printf("\nafter suggesting padding = %v:\n", newPadding)
	printSolution(x, y, w, h, padding)
}

func printSolution(vars ...*cassowary.Variable) {
	for _, v := range vars {
		fmt.Printf("  %-14s = %.4g\n", v, v.Value())
	}
}
