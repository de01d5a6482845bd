package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"zyn/logx"
)

var rootCmd = &cobra.Command{
	Use:   "zyn",
	Short: "zyn account and transaction-signing CLI",
	Long:  "Command line interface for generating zyn accounts and signing transactions.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logx.Error("CMD", "Command execution failed:", err)
		os.Exit(1)
	}
}
