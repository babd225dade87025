package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig `yaml:"server"`
	Static StaticConfig `yaml:"static"`
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string `yaml:"host"` // リッスンするホスト
	Port int    `yaml:"port"` // リッスンするポート番号

	// タイムアウト設定
	ReadTimeout  time.Duration `yaml:"read_timeout"`  // 読み込みタイムアウト
	WriteTimeout time.Duration `yaml:"write_timeout"` // 書き込みタイムアウト
}

// StaticConfig は静的ファイル配信の設定
type StaticConfig struct {
	Root string `yaml:"root"` // 配信するディレクトリ
}

// DefaultPort は引数や環境変数で指定がない場合のポート番号
const DefaultPort = 8000

// Load は設定を読み込む
// 環境変数が設定されていればそれを使い、なければデフォルト値を使う
// 読み込んだ設定は起動後に変更されない
func Load() (*Config, error) {
	port, err := getEnvAsIntOrDefault("PORT", DefaultPort)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("HOST", "0.0.0.0"),
			Port:         port,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 0, // 大きなファイルのダウンロードを打ち切らないため無効化
		},
		Static: StaticConfig{
			Root: getEnvOrDefault("STATIC_DIR", defaultRoot()),
		},
	}

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	// サーバー設定の検証
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}

	// 静的ファイル設定の検証
	if c.Static.Root == "" {
		return fmt.Errorf("配信ディレクトリが設定されていません")
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ParsePort はコマンドライン引数のポート番号を解析する
// 不正な値は黙ってデフォルトに戻さず、エラーとして報告する
func ParsePort(arg string) (int, error) {
	port, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("ポート番号が整数ではありません: %q", arg)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("ポート番号が範囲外です (1-65535): %d", port)
	}
	return port, nil
}

// defaultRoot は配信ディレクトリのデフォルト値を返す
// 実行ファイルの置かれているディレクトリを使い、取得できない場合は
// カレントディレクトリにフォールバックする
func defaultRoot() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// getEnvOrDefault は環境変数を取得し、設定されていない場合はデフォルト値を返す
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault は環境変数を整数として取得し、設定されていない場合はデフォルト値を返す
// 不正な値は黙ってデフォルトに戻さず、エラーとして報告する
func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("環境変数%sが整数ではありません: %q", key, value)
	}
	return intVal, nil
}
