package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dshills/strokemap/internal/config"
	"github.com/dshills/strokemap/internal/input/gesture"
)

func newParseCmd() *cobra.Command {
	var notation string

	cmd := &cobra.Command{
		Use:   "parse GESTURE...",
		Short: "Show a gesture in every notation",
		Long: `Parse gestures the way the configuration file does and print each one
in word, arrow and triangle notation together with its code.

With --notation, print only that rendering, one gesture per line.`,
		Example: `  strokemap parse up-left ↓→ 0x41
  strokemap parse --notation arrow down-right-up`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			combos := make([]gesture.Combo, len(args))
			for i, arg := range args {
				c, err := parseGesture(arg)
				if err != nil {
					return err
				}
				combos[i] = c
			}
			if notation != "" {
				n, err := gesture.ParseNotation(notation)
				if err != nil {
					return err
				}
				return printNotation(cmd.OutOrStdout(), combos, n)
			}
			printCombos(cmd.OutOrStdout(), args, combos)
			return nil
		},
	}
	cmd.Flags().StringVarP(&notation, "notation", "n", "", "print only this notation: word, arrow, triangle")
	return cmd
}

// parseGesture accepts the forms a configuration binding does: any text
// notation or a "0x" code.
func parseGesture(s string) (gesture.Combo, error) {
	return config.BindingConfig{Gesture: s}.Combo()
}

func formatCode(c gesture.Combo) string {
	return fmt.Sprintf("0x%x", c.Code())
}

func printNotation(w io.Writer, combos []gesture.Combo, n gesture.Notation) error {
	for _, c := range combos {
		s, err := c.Format(n)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, s)
	}
	return nil
}

func printCombos(w io.Writer, inputs []string, combos []gesture.Combo) {
	rows := [][]string{{"INPUT", "WORDS", "ARROWS", "TRIANGLES", "CODE"}}
	for i, c := range combos {
		rows = append(rows, []string{inputs[i], c.Words(), c.String(), c.Triangles(), formatCode(c)})
	}
	fmt.Fprint(w, renderTable(rows, func(_, col int) lipgloss.Style {
		if col == 2 {
			return comboStyle
		}
		return lipgloss.NewStyle()
	}))
}
