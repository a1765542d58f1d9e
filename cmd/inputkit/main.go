// Package main is the inputkit command line: one-shot input synthesis
// plus the remote control server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	tapName string
)

var rootCmd = &cobra.Command{
	Use:           "inputkit",
	Short:         "Synthesize keyboard, mouse, and scroll input",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inputkit v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tapName, "tap", "hid", "posting tap: hid, session, or annotated")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(clickCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(dragCmd)
	rootCmd.AddCommand(scrollCmd)
	rootCmd.AddCommand(locationCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(displaysCmd)
	rootCmd.AddCommand(appCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
