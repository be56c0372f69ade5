package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/nikolayk812/podstudio/internal/pricing"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const envPrefix = "PODSTUDIO"

type Config struct {
	DatabaseURL        string          `envconfig:"DATABASE_URL"`
	LogLevel           string          `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat          string          `envconfig:"LOG_FORMAT" default:"text"`
	Currency           string          `envconfig:"CURRENCY" default:"USD"`
	TextSurcharge      decimal.Decimal `envconfig:"TEXT_SURCHARGE" default:"5"`
	ImageSurcharge     decimal.Decimal `envconfig:"IMAGE_SURCHARGE" default:"10"`
	SubmitDelay        time.Duration   `envconfig:"SUBMIT_DELAY" default:"0s"`
	DesignerReplyDelay time.Duration   `envconfig:"DESIGNER_REPLY_DELAY" default:"0s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("envconfig.Process: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if _, err := currency.ParseISO(c.Currency); err != nil {
		return fmt.Errorf("currency[%s] is not valid: %w", c.Currency, err)
	}
	if c.TextSurcharge.IsNegative() {
		return fmt.Errorf("text surcharge is negative")
	}
	if c.ImageSurcharge.IsNegative() {
		return fmt.Errorf("image surcharge is negative")
	}
	if c.SubmitDelay < 0 || c.DesignerReplyDelay < 0 {
		return fmt.Errorf("delays must not be negative")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log format[%s] is not text or json", c.LogFormat)
	}
	return nil
}

func (c Config) CurrencyUnit() currency.Unit {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.USD
	}
	return unit
}

func (c Config) Calculator() (pricing.Calculator, error) {
	return pricing.NewCalculator(pricing.Surcharges{
		Text:  c.TextSurcharge,
		Image: c.ImageSurcharge,
	}, c.CurrencyUnit())
}

// RequireDatabase reports a missing DATABASE_URL for commands that need one.
func (c Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%s_DATABASE_URL is empty", envPrefix)
	}
	return nil
}
