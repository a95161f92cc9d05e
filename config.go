package pg

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// PayPalConfig holds PayPal NVP API credentials
type PayPalConfig struct {
	Username    string
	Password    string
	Signature   string
	Environment string // "production" or "sandbox"
}

// Production reports whether the live PayPal endpoints are selected
func (c PayPalConfig) Production() bool { return c.Environment == "production" }

// RazorpayConfig holds Razorpay subscription credentials
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

// Config aggregates all gateway credentials and selects which gateway to use
type Config struct {
	// Gateway selection, usually fed to StaticResolver
	SubscriptionGateway string // "paypal" | "razorpay" | "manual"

	PayPal   PayPalConfig
	Razorpay RazorpayConfig
}

// LoadConfig reads configuration from .env files and environment variables.
// With no arguments ".env" in the working directory is tried. Missing files
// are ignored; variables already present in the environment win.
func LoadConfig(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("pg-switcher: load env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SUBSCRIPTION_GATEWAY", "paypal")
	v.SetDefault("PAYPAL_ENV", "sandbox")

	return &Config{
		SubscriptionGateway: v.GetString("SUBSCRIPTION_GATEWAY"),
		PayPal: PayPalConfig{
			Username:    v.GetString("PAYPAL_USERNAME"),
			Password:    v.GetString("PAYPAL_PASSWORD"),
			Signature:   v.GetString("PAYPAL_SIGNATURE"),
			Environment: v.GetString("PAYPAL_ENV"),
		},
		Razorpay: RazorpayConfig{
			KeyID:     v.GetString("RAZORPAY_KEY_ID"),
			KeySecret: v.GetString("RAZORPAY_KEY_SECRET"),
		},
	}, nil
}
