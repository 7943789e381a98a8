package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL string // Postgres接続文字列（空ならSQLiteで動く）
	SQLitePath  string // ローカルSQLiteファイル（nursery.db）

	JWTSecret     string // JWT署名シークレット
	JWTTTLMinutes int    // トークン有効期限（分）

	AllowNegativeStock bool // 在庫調整でマイナスを許すか

	AdminEmail    string // 初期管理者（空ならseedしない）
	AdminPassword string

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	ttl, err := atoiDefault("JWT_TTL_MINUTES", 60)
	if err != nil {
		return Config{}, err
	}
	allowNeg, err := boolDefault("ALLOW_NEGATIVE_STOCK", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: getenvDefault("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  getenvDefault("SQLITE_PATH", "nursery.db"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTLMinutes: ttl,

		AllowNegativeStock: allowNeg,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		GoEnv: getenvDefault("GO_ENV", "dev"),
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.JWTTTLMinutes <= 0 {
		return Config{}, fmt.Errorf("JWT_TTL_MINUTES must be positive")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func boolDefault(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s must be bool: %w", key, err)
	}
	return b, nil
}
