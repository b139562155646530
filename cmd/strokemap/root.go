package main

import (
	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	logLevel   string
}

const rootLong = `Recognize mouse gestures and run the actions bound to them.

Gestures are written as words ("up-left"), arrows ("↑←"), triangles ("^<")
or as a hexadecimal code ("0x41"). Bindings come from a TOML or YAML
configuration file and from Lua scripts it lists.`

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "strokemap",
		Short:        "Mouse gesture recognizer",
		Long:         rootLong,
		Version:      Version,
		SilenceUsage: true,
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "configuration file (.toml, .yaml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newParseCmd(),
		newClassifyCmd(),
		newBindingsCmd(opts),
		newRunCmd(opts),
		newVersionCmd(),
	)
	return root
}
