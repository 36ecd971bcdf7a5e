package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	CORSOrigins []string

	// WalletInitialBalance is credited (in minor units) when a wallet is
	// created at registration.
	WalletInitialBalance int64
}

func LoadEnv() Env {
	env := Env{
		AppAddr:              envOr("APP_ADDR", ":8080"),
		GinMode:              strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBUser:               envOr("DB_USER", "root"),
		DBPass:               strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost:               envOr("DB_HOST", "127.0.0.1:3306"),
		DBName:               envOr("DB_NAME", "shuttle_app"),
		JWTSecret:            envOr("JWT_SECRET", "super-secret-key-change-me"),
		WalletInitialBalance: 0,
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}

	if raw := strings.TrimSpace(os.Getenv("WALLET_INITIAL_BALANCE")); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n >= 0 {
			env.WalletInitialBalance = n
		}
	}

	return env
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
