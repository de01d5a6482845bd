package cmd

import (
	"fmt"
	"os"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/cobra"

	"zyn/config"
	"zyn/jsonx"
	"zyn/logx"
	"zyn/stringutil"
	"zyn/transaction"
	"zyn/validation"
	"zyn/wallet"
)

var (
	signKeyFile     string
	signTo          string
	signAmount      string
	signNonce       uint64
	signGasPrice    uint64
	signGasLimit    uint64
	signCode        string
	signData        string
	signChainConfig string
	signConfig      string
)

var signArgs = validation.Schema{
	{Name: "privateKey", Required: true, Predicate: validation.Str(validation.IsPrivateKey)},
	{Name: "to", Required: true, Predicate: validation.Str(validation.IsAddress)},
	{Name: "amount", Required: true, Predicate: validation.Str(isDecimal)},
	{Name: "code", Required: false, Predicate: validation.IsString},
	{Name: "data", Required: false, Predicate: validation.IsString},
}

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Build and sign a transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(signKeyFile)
		if err != nil {
			return pkgerrors.Wrap(err, "read key file")
		}
		privKey := strings.TrimSpace(string(raw))

		if err := signArgs.Validate(map[string]any{
			"privateKey": privKey,
			"to":         signTo,
			"amount":     signAmount,
			"code":       signCode,
			"data":       signData,
		}); err != nil {
			return err
		}

		amount, err := transaction.ParseAmount(signAmount)
		if err != nil {
			return err
		}

		chainCfg := config.DefaultChainConfig()
		if signChainConfig != "" {
			chainCfg, err = config.LoadChainConfig(signChainConfig)
			if err != nil {
				return err
			}
		}
		walletCfg, err := config.LoadWalletConfig(signConfig)
		if err != nil {
			return err
		}
		gasPrice := walletCfg.GasPrice
		if signGasPrice != 0 {
			gasPrice = signGasPrice
		}
		gasLimit := walletCfg.GasLimit
		if signGasLimit != 0 {
			gasLimit = signGasLimit
		}

		w, err := wallet.FromPrivateKey(privKey)
		if err != nil {
			return err
		}

		tx := &transaction.Transaction{
			Version:  chainCfg.Version(),
			Nonce:    signNonce,
			To:       signTo,
			Amount:   amount,
			GasPrice: transaction.GasPriceFromUint64(gasPrice),
			GasLimit: gasLimit,
			Code:     signCode,
			Data:     signData,
		}
		if err := w.SignTransaction(tx); err != nil {
			return err
		}
		logx.Info("CMD", "signed transaction ", stringutil.ShortenLog(tx.Hash()),
			" from ", stringutil.ShortenLog(w.Address))

		out, err := jsonx.MarshalIndent(tx, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func init() {
	signCmd.Flags().StringVar(&signKeyFile, "key-file", "", "file holding the 64-hex private key")
	signCmd.Flags().StringVar(&signTo, "to", "", "recipient address (40 hex chars)")
	signCmd.Flags().StringVar(&signAmount, "amount", "", "amount to transfer (decimal)")
	signCmd.Flags().Uint64Var(&signNonce, "nonce", 0, "account nonce")
	signCmd.Flags().Uint64Var(&signGasPrice, "gas-price", 0, "gas price (overrides config)")
	signCmd.Flags().Uint64Var(&signGasLimit, "gas-limit", 0, "gas limit (overrides config)")
	signCmd.Flags().StringVar(&signCode, "code", "", "contract code")
	signCmd.Flags().StringVar(&signData, "data", "", "contract call data")
	signCmd.Flags().StringVar(&signChainConfig, "chain-config", "", "path to chain.yml")
	signCmd.Flags().StringVar(&signConfig, "config", "", "path to wallet.ini")
	_ = signCmd.MarkFlagRequired("key-file")
	_ = signCmd.MarkFlagRequired("to")
	_ = signCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(signCmd)
}
