package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is set via ldflags during build.
var Version = "dev"

// GetVersion returns the build version.
func GetVersion() string {
	return Version
}

// PrintVersion writes the version line to w.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "strokemap %s\n", GetVersion())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			PrintVersion(cmd.OutOrStdout())
		},
	}
}
