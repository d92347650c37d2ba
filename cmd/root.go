// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devsalary",
	Short: "A CLI tool to compare programming salaries in Moscow.",
	Long: `devsalary queries the HeadHunter and SuperJob vacancy APIs for a list of
programming languages, estimates a rouble salary for every vacancy and prints
per-language averages as one table per job site.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("env-file", ".env", "File to load credentials from before reading the environment")
}
