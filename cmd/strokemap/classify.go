package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/strokemap/internal/input/classify"
	"github.com/dshills/strokemap/internal/input/gesture"
)

func newClassifyCmd() *cobra.Command {
	var (
		noiseRatio float64
		notation   string
	)

	cmd := &cobra.Command{
		Use:   "classify [FILE]",
		Short: "Classify a recorded pointer path",
		Long: `Read pointer positions, one "x y" or "x,y" pair per line, and print the
gesture they form. Screen coordinates are assumed: y grows downwards.
Blank lines and lines starting with # are ignored. Without FILE the
points are read from standard input.`,
		Example: `  printf '0 0\n10 0\n10 10\n' | strokemap classify`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			traj, err := readTrajectory(in)
			if err != nil {
				return err
			}
			c := classify.NewDiffClassifier(noiseRatio).Classify(traj)

			n, err := gesture.ParseNotation(notation)
			if err != nil {
				return err
			}
			return printClassified(cmd.OutOrStdout(), c, n)
		},
	}
	cmd.Flags().Float64Var(&noiseRatio, "noise-ratio", classify.DefaultNoiseRatio, "fraction of the path length below which a step is noise")
	cmd.Flags().StringVarP(&notation, "notation", "n", "arrow", "output notation: word, arrow, triangle")
	return cmd
}

// readTrajectory parses "x y" or "x,y" lines.
func readTrajectory(r io.Reader) (classify.Trajectory, error) {
	var traj classify.Trajectory
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want two coordinates, got %q", line, text)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		traj.Add(classify.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return traj, nil
}

func printClassified(w io.Writer, c gesture.Combo, n gesture.Notation) error {
	if c.IsEmpty() {
		fmt.Fprintln(w, dimStyle.Render("no gesture"))
		return nil
	}
	s, err := c.Format(n)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s %s\n", comboStyle.Render(s), dimStyle.Render(formatCode(c)))
	return nil
}
