// balance prints an address's coin balances in whole-coin decimal form.
// The address is taken from the first argument, or read from the configured
// wallet file (no password needed) when no argument is given.
// Usage: go run ./cmd/balance [address]
package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/vsyslabs/govsys/internal/client"
	"github.com/vsyslabs/govsys/internal/common"
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
		log.Fatal("balance lookup failed", zap.Error(err))
	}
}

func run(log *zap.Logger) error {
	if err := config.Init(); err != nil {
		return err
	}

	addrStr := ""
	if len(os.Args) > 1 {
		addrStr = os.Args[1]
	} else {
		var err error
		addrStr, err = keystore.ReadAddress(config.GetWalletFilePath())
		if err != nil {
			return fmt.Errorf("no address argument and no wallet file: %w", err)
		}
	}
	addr, err := vsys.ParseAddress(addrStr)
	if err != nil {
		return err
	}

	api, err := client.NewNodeAPI(config.GetNodeAPIURL(),
		client.WithAPIKey(config.GetNodeAPIKey()),
		client.WithTimeout(config.GetNodeTimeout()),
		client.WithRateLimit(config.GetNodeRateLimit()),
		client.WithLogger(log),
	)
	if err != nil {
		return err
	}
	chain, err := vsys.NewChain(api, vsys.ChainID(config.GetChainID()))
	if err != nil {
		return err
	}

	ctx := context.Background()
	balance, err := chain.Balance(ctx, addr)
	if err != nil {
		return err
	}
	effective, err := chain.EffectiveBalance(ctx, addr)
	if err != nil {
		return err
	}

	log.Info("balance",
		zap.String("address", addr.String()),
		zap.String("balance", common.UnitsToVSYS(uint64(balance))),
		zap.String("effectiveBalance", common.UnitsToVSYS(uint64(effective))),
	)
	return nil
}
