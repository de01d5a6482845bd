package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"zyn/errors"
	"zyn/wallet"
)

var (
	addressPrivKey string
	addressPubKey  string
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Derive an address from a private or public key",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case addressPrivKey != "":
			pub, err := wallet.DerivePublicKey(addressPrivKey)
			if err != nil {
				return err
			}
			addr, err := wallet.DeriveAddress(addressPrivKey)
			if err != nil {
				return err
			}
			fmt.Printf("Public Key: %s\n", pub)
			fmt.Printf("Address: %s\n", addr)
		case addressPubKey != "":
			addr, err := wallet.AddressFromPublicKey(addressPubKey)
			if err != nil {
				return err
			}
			fmt.Printf("Address: %s\n", addr)
		default:
			return errors.NewError(errors.ErrCodeInvalidArgument,
				"either --private-key or --public-key is required")
		}
		return nil
	},
}

func init() {
	addressCmd.Flags().StringVar(&addressPrivKey, "private-key", "", "64-hex private key")
	addressCmd.Flags().StringVar(&addressPubKey, "public-key", "", "hex public key")
	rootCmd.AddCommand(addressCmd)
}
