package gpapi

import "github.com/cardflow/gpapi/gpapi/models"

// Config is the merchant and account configuration a Compiler builds requests
// for.
type Config struct {
	// MerchantID scopes every endpoint under /merchants/{id} when set.
	MerchantID                       string
	TransactionProcessingAccountName string
	TokenizationAccountName          string
	Channel                          models.Channel
	Country                          string
}

func DefaultConfig() *Config {
	return &Config{
		TransactionProcessingAccountName: "transaction_processing",
		TokenizationAccountName:          "tokenization",
		Channel:                          models.CardNotPresent,
		Country:                          "US",
	}
}

func (c *Config) merchantURL() string {
	if c.MerchantID == "" {
		return ""
	}
	return "/merchants/" + c.MerchantID
}
