// Package cmd provides the local command-line runner for the triage entry
// points. Each subcommand drives the same handler the matching Lambda binary
// serves, so behavior stays identical between a local run and a deployed
// invocation.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Jira ticket triage driven by a Bedrock agent",
	Long: `Assistant fetches Jira tickets, runs them past a Bedrock agent for
review, and writes the agent's feedback back to Jira as comments and labels.

Each subcommand runs one of the three serverless entry points locally with
the same configuration the deployed functions read.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(updateCmd)
}
