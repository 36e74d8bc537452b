package cli

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/go-tableau/cassowary/layout"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Splits a span into Fill regions and renders them as ASCII boxes.",
	Long: `layout builds a Layout with one Fill(weight) region per --fill value,
splits a span of the given --width, and draws each resulting region as a
box sized to its solved width, widened where needed to fit its label.`,
	Run: runLayout,
}

func init() {
	layoutCmd.Flags().Int("width", 60, "total span width, in cells")
	layoutCmd.Flags().IntSlice("fill", []int{1, 2, 1}, "Fill weight for each region, one flag value per region")
}

func runLayout(cmd *cobra.Command, args []string) {
	weights := GetIntSlice(cmd, "fill")
	width := GetInt(cmd, "width")

	constraints := make([]layout.Constraint, len(weights))
	for i, w := range weights {
		constraints[i] = layout.Fill(w)
	}

	l := layout.New(constraints...)

	segments, err := l.Split(0, width)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var top, mid, bottom strings.Builder
	for i, seg := range segments {
		label := fmt.Sprintf("Fill(%d)", weights[i])
		box := max(seg.Size, runewidth.StringWidth(label)+2)

		top.WriteString("┌" + strings.Repeat("─", box-2) + "┐")
		mid.WriteString("│" + centerLabel(label, box-2) + "│")
		bottom.WriteString("└" + strings.Repeat("─", box-2) + "┘")
	}

	fmt.Println(top.String())
	fmt.Println(mid.String())
	fmt.Println(bottom.String())

	for i, seg := range segments {
		fmt.Printf("  region %d: start=%d size=%d\n", i, seg.Start, seg.Size)
	}
}

func centerLabel(label string, width int) string {
	pad := width - runewidth.StringWidth(label)
	if pad <= 0 {
		return label
	}
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + label + strings.Repeat(" ", right)
}
