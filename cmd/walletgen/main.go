// walletgen generates a fresh wallet: a 15-word seed, its first account
// address on the configured chain, and an encrypted wallet file with a QR
// rendering of the address.
// Usage: go run ./cmd/walletgen
package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/vsyslabs/govsys/internal/config"
	"github.com/vsyslabs/govsys/internal/keystore"
	"github.com/vsyslabs/govsys/vsys"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(log); err != nil {
		log.Fatal("wallet generation failed", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	if err := config.Init(); err != nil {
		return err
	}
	if err := config.PromptForPassword(); err != nil {
		return err
	}
	password, err := config.GetWalletPasswordBytes()
	if err != nil {
		return err
	}
	defer clear(password)

	wallet, err := vsys.GenerateWallet(nil)
	if err != nil {
		return err
	}

	chainID := vsys.ChainID(config.GetChainID())
	kp, err := vsys.KeyPairFromSeed(wallet.Seed(), 0)
	if err != nil {
		return err
	}
	addr, err := vsys.BuildAddress(kp.Pub, chainID)
	if err != nil {
		return err
	}

	qrPNG, err := qrcode.Encode(addr.String(), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to render address QR: %w", err)
	}

	data := &keystore.WalletData{
		Seed:         wallet.Seed(),
		AccountNonce: 0,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	filePath := config.GetWalletFilePath()
	err = keystore.Encrypt(
		filePath,
		"vsys",
		addr.String(),
		base64.StdEncoding.EncodeToString(qrPNG),
		data,
		password,
	)
	if err != nil {
		return err
	}

	log.Info("wallet file written",
		zap.String("path", filePath),
		zap.String("address", addr.String()),
		zap.String("chain", chainID.String()),
	)
	return nil
}
