package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// DefaultPort is used when PORT is unset or the variant ignores it
const DefaultPort = "8050"

// Data sources
const (
	SourceFile   = "file"
	SourceSQLite = "sqlite"
)

// Config 应用配置
type Config struct {
	Port       string // ":8050" form, ready for gin's Run
	DataPath   string // Spreadsheet path
	DataSource string // file or sqlite
	DBPath     string
	Sheet      string // xlsx worksheet, empty for the first one
	PhotoDir   string // Served at /photos when set
	AssetsHost string // echarts asset host, empty for the go-echarts default
	GinMode    string
	RateLimit  int // Hover requests per minute per IP
	Variant    Variant
}

// Load 加载配置
func Load() (*Config, error) {
	// A missing .env file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Ignoring .env: %v", err)
	}

	variants := Presets()
	if path := os.Getenv("VARIANTS_FILE"); path != "" {
		extra, err := LoadVariants(path)
		if err != nil {
			return nil, err
		}
		for name, v := range extra {
			variants[name] = v
		}
	}

	name := getenv("VARIANT", DefaultVariant)
	variant, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown variant %q", ErrInvalidConfig, name)
	}
	if v := os.Getenv("LEGEND_POSITION"); v != "" {
		variant.LegendPosition = v
	}
	if v := os.Getenv("TOOLTIP_ANCHOR"); v != "" {
		variant.TooltipAnchor = v
	}

	port := DefaultPort
	if variant.ReadPortFromEnv {
		port = getenv("PORT", DefaultPort)
	}
	port, err := NormalizePort(port)
	if err != nil {
		return nil, err
	}

	rateLimit := 600
	if v := os.Getenv("RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: RATE_LIMIT %q", ErrInvalidConfig, v)
		}
		rateLimit = n
	}

	cfg := &Config{
		Port:       port,
		DataPath:   getenv("DATA_PATH", "./Asir.xlsx"),
		DataSource: getenv("DATA_SOURCE", SourceFile),
		DBPath:     getenv("DB_PATH", "./data/flora.db"),
		Sheet:      os.Getenv("SHEET"),
		PhotoDir:   os.Getenv("PHOTO_DIR"),
		AssetsHost: os.Getenv("ASSETS_HOST"),
		GinMode:    os.Getenv("GIN_MODE"),
		RateLimit:  rateLimit,
		Variant:    variant,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the data source and the layout variant
func (c *Config) Validate() error {
	switch c.DataSource {
	case SourceFile, SourceSQLite:
	default:
		return fmt.Errorf("%w: unknown data source %q", ErrInvalidConfig, c.DataSource)
	}
	if _, err := NormalizePort(c.Port); err != nil {
		return err
	}
	return c.Variant.Validate()
}

// NormalizePort accepts "8050" or ":8050" and returns ":8050"
func NormalizePort(port string) (string, error) {
	p := strings.TrimPrefix(strings.TrimSpace(port), ":")
	n, err := strconv.Atoi(p)
	if err != nil || n < 1 || n > 65535 {
		return "", fmt.Errorf("%w: port %q", ErrInvalidConfig, port)
	}
	return ":" + strconv.Itoa(n), nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
