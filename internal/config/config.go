package config

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	envServerAddress      = "SERVER_ADDRESS"
	envDatabaseDriver     = "DATABASE_DRIVER"
	envDatabaseDSN        = "DATABASE_DSN"
	envJWTSecretKey       = "JWT_SECRET_KEY"
	envJWTAccessExpire    = "JWT_ACCESS_EXPIRE"
	envBcryptCost         = "BCRYPT_COST"
	envLogLevel           = "LOG_LEVEL"
	envCORSAllowedOrigins = "CORS_ALLOWED_ORIGINS"
	envLoginRateLimit     = "LOGIN_RATE_LIMIT"
	envTrustedProxies     = "TRUSTED_PROXIES"
)

const (
	defaultServerAddress  = "localhost:3003"
	defaultJWTAccessTTL   = 0 // без срока действия
	defaultBcryptCost     = 10
	defaultLogLevel       = "info"
	defaultCORSOrigins    = "*"
	defaultLoginRateLimit = 10 // запросов в минуту с одного IP
	jwtSecretMinBytes     = 32
)

type Config struct {
	ServerAddress      string
	DatabaseDriver     string // pgx | sqlite3, пусто - in-memory
	DatabaseDSN        string
	JWTSecretKey       string // base64, минимум 32 байта для HS256
	JWTAccessExpire    time.Duration
	BcryptCost         int
	LogLevel           string
	CORSAllowedOrigins []string
	LoginRateLimit     int
	// TrustedProxies - сети прокси, чьим X-Forwarded-For можно верить. Пусто - заголовки игнорируются.
	TrustedProxies []netip.Prefix

	// JWTSecretGenerated is set when no secret was configured.
	JWTSecretGenerated bool
}

// NewConfig собирает конфигурацию: значения по умолчанию -> флаги -> .env/окружение.
// args - аргументы без имени программы.
func NewConfig(args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		ServerAddress:   defaultServerAddress,
		JWTAccessExpire: defaultJWTAccessTTL,
		BcryptCost:      defaultBcryptCost,
		LogLevel:        defaultLogLevel,
		LoginRateLimit:  defaultLoginRateLimit,
	}
	origins := defaultCORSOrigins
	var proxies string

	fset := flag.NewFlagSet("bloglist", flag.ContinueOnError)
	fset.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Server address")
	fset.StringVar(&cfg.DatabaseDriver, "database-driver", cfg.DatabaseDriver, "Database driver: pgx, sqlite3 or empty for in-memory")
	fset.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "Database DSN")
	fset.DurationVar(&cfg.JWTAccessExpire, "jwt-access-expire", cfg.JWTAccessExpire, "JWT access token expiration, 0 disables it")
	fset.IntVar(&cfg.BcryptCost, "bcrypt-cost", cfg.BcryptCost, "bcrypt cost for new passwords")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fset.StringVar(&origins, "cors-origins", origins, "Comma separated CORS allowed origins")
	fset.IntVar(&cfg.LoginRateLimit, "login-rate-limit", cfg.LoginRateLimit, "Login attempts per minute per IP, 0 disables the limit")
	fset.StringVar(&proxies, "trusted-proxies", proxies, "Comma separated proxy IPs or CIDRs allowed to set X-Forwarded-For")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	applyEnv(envServerAddress, &cfg.ServerAddress)
	applyEnv(envDatabaseDriver, &cfg.DatabaseDriver)
	applyEnv(envDatabaseDSN, &cfg.DatabaseDSN)
	applyEnv(envJWTSecretKey, &cfg.JWTSecretKey)
	applyEnv(envLogLevel, &cfg.LogLevel)
	applyEnv(envCORSAllowedOrigins, &origins)
	applyEnv(envTrustedProxies, &proxies)
	if err := applyEnvDuration(envJWTAccessExpire, &cfg.JWTAccessExpire); err != nil {
		return nil, err
	}
	if err := applyEnvInt(envBcryptCost, &cfg.BcryptCost); err != nil {
		return nil, err
	}
	if err := applyEnvInt(envLoginRateLimit, &cfg.LoginRateLimit); err != nil {
		return nil, err
	}

	cfg.CORSAllowedOrigins = splitList(origins)
	trusted, err := parsePrefixes(splitList(proxies))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", envTrustedProxies, err)
	}
	cfg.TrustedProxies = trusted
	cfg.normalizeServerAddress()

	if err := cfg.validateJWTSecret(); err != nil {
		return nil, err
	}
	if cfg.DatabaseDriver != "" && cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("%s is set but %s is empty", envDatabaseDriver, envDatabaseDSN)
	}

	return cfg, nil
}

func applyEnv(key string, target *string) {
	if val, ok := os.LookupEnv(key); ok {
		*target = val
	}
}

func applyEnvDuration(key string, target *time.Duration) error {
	val, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = d
	return nil
}

func applyEnvInt(key string, target *int) error {
	val, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = n
	return nil
}

func (c *Config) validateJWTSecret() error {
	if c.JWTSecretKey == "" {
		// случайный ключ для разработки, токены не переживут перезапуск
		key := make([]byte, jwtSecretMinBytes)
		if _, err := rand.Read(key); err != nil {
			return fmt.Errorf("failed to generate JWT secret key: %w", err)
		}
		c.JWTSecretKey = base64.StdEncoding.EncodeToString(key)
		c.JWTSecretGenerated = true
		return nil
	}

	key, err := base64.StdEncoding.DecodeString(c.JWTSecretKey)
	if err != nil || len(key) < jwtSecretMinBytes {
		return fmt.Errorf("JWT secret key must be base64 of at least %d bytes", jwtSecretMinBytes)
	}
	return nil
}

func (c *Config) normalizeServerAddress() {
	if strings.HasPrefix(c.ServerAddress, ":") {
		c.ServerAddress = "localhost" + c.ServerAddress
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parsePrefixes принимает и отдельные адреса, и CIDR
func parsePrefixes(items []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(items))
	for _, item := range items {
		if strings.Contains(item, "/") {
			p, err := netip.ParsePrefix(item)
			if err != nil {
				return nil, err
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, err
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}
