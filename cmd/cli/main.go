package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/glitchcity/cmd/cli/gen"
	"github.com/spf13/cobra"
)

func init() {
	if err := godotenv.Load(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(gen.Group)
	rootCmd.AddCommand(gen.World)
}

var rootCmd = &cobra.Command{
	Use:  "glitchcity-cli",
	Long: `Command line utilities for Glitch City Buffalo`,
	Run: func(_ *cobra.Command, _ []string) {
		// Do Stuff Here
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
