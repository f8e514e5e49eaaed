// Command spinegen generates Swift bindings from the spine-cpp-lite C header.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	exitOK    = 0
	exitError = 1
	exitStale = 2
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var errStaleOutput = errors.New("generated output is stale")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errStaleOutput):
		color.New(color.FgYellow).Fprintf(stderr, "Error: %v\n", err)
		return exitStale
	default:
		color.New(color.FgRed).Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "spinegen",
		Short: "Generate Swift bindings from spine-cpp-lite.h",
		Long: `spinegen reads the spine-cpp-lite C header and emits Swift classes
wrapping its flat C functions.

Commands:
  model     Dump the synthesized object model
  stats     Print per-class member counts`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.generate,
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVarP(&a.header, "header", "H", "", "path to spine-cpp-lite.h")
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./spinegen.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	rootCmd.Flags().StringVarP(&a.output, "output", "o", "", "write Swift to this file instead of stdout")
	rootCmd.Flags().BoolVar(&a.check, "check", false, "compare with the existing output file instead of writing it")

	rootCmd.AddCommand(a.modelCmd())
	rootCmd.AddCommand(a.statsCmd())
	rootCmd.AddCommand(versionCmd(stdout))

	return rootCmd
}

func versionCmd(w io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(w, "spinegen %s\n", version)
		},
	}
}
