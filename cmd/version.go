package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the fixturegen version",
		Long:  "Print the fixturegen module version and the Go toolchain it was built with.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			printVersion(cmd, info, ok)
		},
	}
}

// printVersion writes the build version. Binaries built from a checkout without
// module version information report the version as unknown.
func printVersion(cmd *cobra.Command, info *debug.BuildInfo, ok bool) {
	if !ok || info == nil {
		cmd.Println("fixturegen version unknown")
		return
	}

	version := info.Main.Version
	if version == "" || version == "(devel)" {
		version = "unknown"
	}

	cmd.Printf("fixturegen version %s\n", version)
	cmd.Printf("go version %s\n", info.GoVersion)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
