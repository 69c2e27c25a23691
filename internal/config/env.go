package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the SDK's binaries.
// Note: the wallet password is prompted at runtime and stored in memory -
// use GetWalletPasswordBytes()
type Config struct {
	NodeAPIURL     string        `envconfig:"NODE_API_URL" default:"http://veldidina.vos.systems:9928"`
	NodeAPIKey     string        `envconfig:"NODE_API_KEY" default:""`
	ChainID        string        `envconfig:"CHAIN_ID" default:"T"`
	NodeRateLimit  int           `envconfig:"NODE_RATE_LIMIT" default:"0"`
	NodeTimeout    time.Duration `envconfig:"NODE_TIMEOUT" default:"15s"`
	WalletFilePath string        `envconfig:"WALLET_FILE_PATH" default:"wallet.vwt"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if cfg.ChainID != "M" && cfg.ChainID != "T" {
		return fmt.Errorf("CHAIN_ID must be M or T, got %q", cfg.ChainID)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetNodeAPIURL returns the node REST API URL from configuration
func GetNodeAPIURL() string {
	return Get().NodeAPIURL
}

// GetNodeAPIKey returns the node api_key secret from configuration
func GetNodeAPIKey() string {
	return Get().NodeAPIKey
}

// GetChainID returns the network id byte from configuration
func GetChainID() byte {
	return Get().ChainID[0]
}

// GetNodeRateLimit returns the request-per-second cap from configuration
func GetNodeRateLimit() int {
	return Get().NodeRateLimit
}

// GetNodeTimeout returns the per-request timeout for node calls from configuration
func GetNodeTimeout() time.Duration {
	return Get().NodeTimeout
}

// GetWalletFilePath returns path to the encrypted wallet file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

var passwordBytes []byte

// PromptForPassword prompts the user for the wallet password in the terminal.
// The password is read without echoing (hidden input) and stored in memory.
func PromptForPassword() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter password")
	}
	fmt.Fprint(os.Stderr, "Enter wallet password: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("password cannot be empty")
	}

	passwordBytes = make([]byte, len(raw))
	copy(passwordBytes, raw)
	clear(raw)
	return nil
}

// GetWalletPasswordBytes returns the password stored in memory (from PromptForPassword).
// Returns an error if the password was not set.
// Caller must zero the returned slice after use for security.
func GetWalletPasswordBytes() ([]byte, error) {
	if len(passwordBytes) == 0 {
		return nil, errors.New("password not set: call PromptForPassword at startup")
	}
	out := make([]byte, len(passwordBytes))
	copy(out, passwordBytes)
	return out, nil
}
