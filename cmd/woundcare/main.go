package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "woundcare",
		Short: "Wound and invasive device assessment note service",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(promptCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
