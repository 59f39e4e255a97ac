// Package main はキャッシュ無効化サーバーコマンドの実装です
package main

import (
	"context"
	"os"
	"time"

	"cachebuster/internal/config"
	"cachebuster/internal/server"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CLI はコマンドライン定義
// ポートと配信ディレクトリは固定のため、ヘルプ以外のオプションはない
var CLI struct{}

func main() {
	kong.Parse(&CLI,
		kong.Name("cachebuster"),
		kong.Description(
			"Serve ./build on port 3000 with caching disabled, so rebuilt JavaScript and CSS are always fetched fresh.",
		),
		kong.UsageOnError(),
	)

	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	gin.SetMode(gin.ReleaseMode)

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("設定の読み込みに失敗しました")
	}

	srv := server.New(cfg)

	log.Info().Str("addr", cfg.ServerAddress()).Str("dir", cfg.Server.Dir).Msg("キャッシュ無効化サーバーを起動します")
	if err := srv.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("サーバーの起動に失敗しました")
	}
}
