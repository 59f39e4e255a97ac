package config

import (
	"fmt"
	"time"
)

// 固定の既定値。実行時に上書きする手段は用意しない
const (
	DefaultHost = ""      // 全インターフェースでリッスン
	DefaultPort = 3000    // リッスンするポート番号
	DefaultDir  = "build" // 起動ディレクトリからの相対パス
)

// Config はアプリケーション全体の設定を保持する構造体
type Config struct {
	Server ServerConfig
}

// ServerConfig はHTTPサーバーの設定
type ServerConfig struct {
	Host string // リッスンするホスト
	Port int    // リッスンするポート番号 (0 はランダムポート)
	Dir  string // 配信するルートディレクトリ

	// タイムアウト設定 (0 は無制限)
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Load は設定を読み込む
// 設定項目はすべて固定値で、環境変数や設定ファイルは参照しない
func Load() (*Config, error) {
	cfg := Default()

	// 設定の検証
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("設定の検証に失敗: %w", err)
	}

	return cfg, nil
}

// Default は既定値で埋めた設定を返す
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
			Dir:  DefaultDir,
		},
	}
}

// Validate は設定の妥当性を検証する
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("無効なポート番号: %d", c.Server.Port)
	}
	if c.Server.Dir == "" {
		return fmt.Errorf("配信ディレクトリが指定されていません")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return fmt.Errorf("タイムアウトが負の値です")
	}

	return nil
}

// ServerAddress はサーバーのリッスンアドレスを返す
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
