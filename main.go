package main

import (
	"context"
	"os"
	"time"

	"cachebuster/internal/config"
	"cachebuster/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	gin.SetMode(gin.ReleaseMode)

	// 設定を読み込む
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("設定の読み込みに失敗しました")
	}

	// サーバーを作成して起動
	srv := server.New(cfg)
	if err := srv.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("サーバーの起動に失敗しました")
	}
}
