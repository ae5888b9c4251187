package config

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends for catalog, tab and operator data. The ledger itself is
// always a directory of record files.
const (
	StorageFile  = "file"
	StoragePgSQL = "pgsql"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Storage
	DataDir        string
	LedgerDir      string
	RoomConfigFile string
	StorageBackend string
	DatabaseURL    string
	EnableDBCheck  bool

	// Auth
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	LoginRateLimit    string // ulule limiter notation, e.g. "5-M"

	// Printer
	PrinterType       string // none, device or network
	PrinterDevicePath string
	PrinterAddress    string
	ReceiptWidth      int

	// Logging
	LogFile  string
	LogLevel string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DATA_DIR", "data")
	v.SetDefault("LEDGER_DIR", "")
	v.SetDefault("ROOM_CONFIG_FILE", "")
	v.SetDefault("STORAGE_BACKEND", StorageFile)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "comanda-backend")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("PRINTER_TYPE", "none")
	v.SetDefault("PRINTER_DEVICE_PATH", "")
	v.SetDefault("PRINTER_ADDRESS", "")
	v.SetDefault("RECEIPT_WIDTH", 32)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	v.AutomaticEnv()

	cfg := &Config{
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		DataDir:           v.GetString("DATA_DIR"),
		LedgerDir:         v.GetString("LEDGER_DIR"),
		RoomConfigFile:    v.GetString("ROOM_CONFIG_FILE"),
		StorageBackend:    strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND"))),
		DatabaseURL:       v.GetString("PGSQL_URL"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		LoginRateLimit:    v.GetString("LOGIN_RATE_LIMIT"),
		PrinterType:       strings.ToLower(strings.TrimSpace(v.GetString("PRINTER_TYPE"))),
		PrinterDevicePath: v.GetString("PRINTER_DEVICE_PATH"),
		PrinterAddress:    v.GetString("PRINTER_ADDRESS"),
		ReceiptWidth:      v.GetInt("RECEIPT_WIDTH"),
		LogFile:           v.GetString("LOG_FILE"),
		LogLevel:          v.GetString("LOG_LEVEL"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.LedgerDir == "" {
		cfg.LedgerDir = filepath.Join(cfg.DataDir, "sales")
	}
	if cfg.RoomConfigFile == "" {
		cfg.RoomConfigFile = filepath.Join(cfg.DataDir, "room.json")
	}

	switch cfg.StorageBackend {
	case StorageFile:
	case StoragePgSQL:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_BACKEND is %s", StoragePgSQL)
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (use %s or %s)", cfg.StorageBackend, StorageFile, StoragePgSQL)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "12h")
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "comanda-backend"
	}
	if cfg.LoginRateLimit == "" {
		cfg.LoginRateLimit = "5-M"
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
