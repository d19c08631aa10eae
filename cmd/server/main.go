// Package main is the entry point for the narrative server and its tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-narrative/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-narrative",
	Short: "Narrative engine gRPC server",
	Long:  `rpg-narrative serves a branching text adventure over gRPC and ships the tools to import content and play it locally.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
