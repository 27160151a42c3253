package preview

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/cardflow/gpapi/gpapi"
	"github.com/cardflow/gpapi/gpapi/models"
	"github.com/joho/godotenv"
)

// Config is a configuration for the preview application
type Config struct {
	HTTPAddr string
	// Debug enables debug logging, including one record per compiled request.
	Debug    bool
	Compiler *gpapi.Config
}

func DefaultConfig() *Config {
	return &Config{
		HTTPAddr: "localhost:9191",
		Compiler: gpapi.DefaultConfig(),
	}
}

// LoadConfig reads the configuration from the environment after loading the
// given dotenv files (".env" when none are given). Missing files are skipped;
// variables already set in the environment win.
func LoadConfig(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := DefaultConfig()
	cfg.HTTPAddr = getenv("PREVIEW_HTTP_ADDR", cfg.HTTPAddr)
	cfg.Debug = getenv("PREVIEW_DEBUG", "false") == "true"

	cc := cfg.Compiler
	cc.MerchantID = getenv("GPAPI_MERCHANT_ID", cc.MerchantID)
	cc.TransactionProcessingAccountName = getenv("GPAPI_ACCOUNT_NAME", cc.TransactionProcessingAccountName)
	cc.TokenizationAccountName = getenv("GPAPI_TOKENIZATION_ACCOUNT_NAME", cc.TokenizationAccountName)
	cc.Country = getenv("GPAPI_COUNTRY", cc.Country)

	switch ch := models.Channel(getenv("GPAPI_CHANNEL", string(cc.Channel))); ch {
	case models.CardPresent, models.CardNotPresent:
		cc.Channel = ch
	default:
		return nil, fmt.Errorf("unsupported GPAPI_CHANNEL=%s", ch)
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
