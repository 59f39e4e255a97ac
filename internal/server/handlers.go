package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// setupRoutes はHTTPルートを設定する
func (s *Server) setupRoutes() {
	s.engine.Use(accessLog(), recovery())

	// すべてのパスとメソッドをファイル配信に回す
	// GET / HEAD 以外はハンドラ側で 501 を返す
	files := gin.WrapH(s.files)
	s.engine.GET("/*filepath", files)
	s.engine.HEAD("/*filepath", files)
	s.engine.NoRoute(files)
}

// accessLog はリクエストごとにアクセスログを出力する
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		c.Next()

		log.Info().
			Str("request_id", requestID).
			Str("remote", c.Request.RemoteAddr).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Int("size", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

// recovery はハンドラのパニックをログに残して接続を切断する
// 後続のリクエストは通常どおり処理される
func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec != http.ErrAbortHandler {
				log.Error().
					Interface("panic", rec).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("リクエスト処理中にパニックが発生しました")
			}
			// net/http は ErrAbortHandler を受けると接続を黙って閉じる
			panic(http.ErrAbortHandler)
		}()

		c.Next()
	}
}
