package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/ordercalc/pkg/stringsutil"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string
	// MaxBodyBytes caps worksheet uploads.
	MaxBodyBytes int64
}

// LoadConfig reads server settings from the environment; .env loading is the caller's job.
func LoadConfig() (*Config, error) {
	useHttp2 := os.Getenv("USE_HTTP2") == "true"

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	origins := stringsutil.SplitTrimmed(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxBody := int64(1 << 20)
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_BODY_BYTES %q", v)
		}
		maxBody = n
	}

	return &Config{
		Port:         port,
		UseHttp2:     useHttp2,
		CorsOrigins:  origins,
		MaxBodyBytes: maxBody,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
