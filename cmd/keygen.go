package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"zyn/logx"
	"zyn/wallet"
)

var keygenOut string

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a new private key and derived account",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := wallet.NewWallet()
		if err != nil {
			return err
		}

		if keygenOut != "" {
			if err := os.WriteFile(keygenOut, []byte(w.PrivateKey), 0600); err != nil {
				return errors.Wrap(err, "write key file")
			}
			logx.Info("CMD", "private key written to ", keygenOut)
		} else {
			fmt.Printf("Private Key: %s\n", w.PrivateKey)
		}
		fmt.Printf("Public Key: %s\n", w.PublicKey)
		fmt.Printf("Address: %s\n", w.Address)
		return nil
	},
}

func init() {
	keygenCmd.Flags().StringVar(&keygenOut, "out", "", "write the private key to this file instead of stdout")
	rootCmd.AddCommand(keygenCmd)
}
