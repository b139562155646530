package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dshills/strokemap/internal/app"
	"github.com/dshills/strokemap/internal/input/gesturemap"
)

func newBindingsCmd(opts *rootOptions) *cobra.Command {
	var showActions bool

	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "List gesture bindings",
		Long: `Load the configuration and its scripts and list every bound gesture
with the action it runs and where the binding came from.

With --actions, list the named actions bindings can refer to instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(app.Options{
				ConfigPath: opts.configPath,
				LogLevel:   opts.logLevel,
				LogOutput:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			defer a.Close()

			if showActions {
				printActions(cmd.OutOrStdout(), a.Actions())
				return nil
			}
			printBindings(cmd.OutOrStdout(), a.Bindings())
			return nil
		},
	}
	cmd.Flags().BoolVar(&showActions, "actions", false, "list available actions")
	return cmd
}

func printBindings(w io.Writer, bindings []gesturemap.Binding) {
	if len(bindings) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no bindings"))
		return
	}
	rows := [][]string{{"GESTURE", "WORDS", "CODE", "ACTION", "SOURCE", "DESCRIPTION"}}
	for _, b := range bindings {
		rows = append(rows, []string{
			b.Combo.String(),
			b.Combo.Words(),
			formatCode(b.Combo),
			b.Label(),
			b.Source,
			b.Description,
		})
	}
	fmt.Fprint(w, renderTable(rows, func(_, col int) lipgloss.Style {
		switch col {
		case 0:
			return comboStyle
		case 4, 5:
			return dimStyle
		}
		return lipgloss.NewStyle()
	}))
}

func printActions(w io.Writer, actions *gesturemap.ActionTable) {
	rows := [][]string{{"ACTION", "DESCRIPTION"}}
	for _, name := range actions.Names() {
		a, err := actions.Lookup(name)
		if err != nil {
			continue
		}
		rows = append(rows, []string{a.Name, a.Description})
	}
	fmt.Fprint(w, renderTable(rows, func(_, col int) lipgloss.Style {
		if col == 1 {
			return dimStyle
		}
		return lipgloss.NewStyle()
	}))
}
