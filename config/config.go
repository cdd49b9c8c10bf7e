package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and upstream market-data provider settings.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8000
//	CMC_API_KEY=your-coinmarketcap-key
//	CMC_API_BASE=https://pro-api.coinmarketcap.com
//	COINGECKO_API_BASE=https://api.coingecko.com
type Config struct {
	Server        ServerConfig        // HTTP server configuration
	CoinMarketCap CoinMarketCapConfig // CoinMarketCap upstream settings
	CoinGecko     CoinGeckoConfig     // CoinGecko upstream settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8000")
}

// CoinMarketCapConfig defines how to reach the CoinMarketCap Pro API.
//
// Fields:
//   - APIKey: credential sent as the X-CMC_PRO_API_KEY header. May be empty:
//     the server still starts, but key-dependent endpoints answer 503 at
//     request time.
//   - BaseURL: scheme+host of the API, overridable for tests.
type CoinMarketCapConfig struct {
	APIKey  string
	BaseURL string
}

// CoinGeckoConfig defines how to reach the CoinGecko public API.
// No credential is needed; only the base URL is configurable.
type CoinGeckoConfig struct {
	BaseURL string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all fields except CMC_API_KEY, which has no default.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Note:
//   - A missing CMC_API_KEY is NOT fatal. Startup succeeds and the three
//     CoinMarketCap-backed endpoints reject requests with 503 until the key
//     is provided.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8000")
	viper.SetDefault("CMC_API_BASE", "https://pro-api.coinmarketcap.com")
	viper.SetDefault("COINGECKO_API_BASE", "https://api.coingecko.com")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		CoinMarketCap: CoinMarketCapConfig{
			APIKey:  viper.GetString("CMC_API_KEY"),
			BaseURL: viper.GetString("CMC_API_BASE"),
		},
		CoinGecko: CoinGeckoConfig{
			BaseURL: viper.GetString("COINGECKO_API_BASE"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
// CMC_API_KEY is deliberately excluded: its absence only disables the
// CoinMarketCap endpoints at request time.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.CoinMarketCap.BaseURL == "" {
		missing = append(missing, "CMC_API_BASE")
	}
	if AppConfig.CoinGecko.BaseURL == "" {
		missing = append(missing, "COINGECKO_API_BASE")
	}

	if len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}
