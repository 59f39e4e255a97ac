package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"cachebuster/internal/config"
	"cachebuster/internal/nocache"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/netutil"
)

// Server はHTTPサーバーを管理する構造体
type Server struct {
	config     *config.Config
	engine     *gin.Engine
	httpServer *http.Server

	root     string
	files    *nocache.Handler
	listener net.Listener

	// 起動メッセージの出力先
	stdout io.Writer
}

// New は新しいServerインスタンスを作成する
func New(cfg *config.Config) *Server {
	engine := gin.New()

	httpServer := &http.Server{
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorLog:     stdlog.New(log.Logger.With().Str("component", "http").Logger(), "", 0),
	}
	// 1リクエストごとに接続を閉じる
	httpServer.SetKeepAlivesEnabled(false)

	return &Server{
		config:     cfg,
		engine:     engine,
		httpServer: httpServer,
		stdout:     os.Stdout,
	}
}

// Start はサーバーを起動し、停止するまでブロックする
func (s *Server) Start(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Listen は配信ディレクトリを確認してリッスンを開始する
func (s *Server) Listen() error {
	if s.listener != nil {
		return errors.New("サーバーは既にリッスンしています")
	}

	root, err := resolveRoot(s.config.Server.Dir)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.config.ServerAddress())
	if err != nil {
		return fmt.Errorf("ポートのリッスンに失敗: %w", err)
	}

	s.root = root
	s.files = nocache.New(http.Dir(root))
	s.setupRoutes()

	// 前の接続を閉じるまで次の接続を受け付けない
	s.listener = netutil.LimitListener(ln, 1)

	s.printBanner()
	return nil
}

// Serve はリクエストの処理を開始する
// コンテキストのキャンセルかシグナルの受信で停止する
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return errors.New("リッスンが開始されていません")
	}

	// シャットダウン用のチャンネル
	serveCh := make(chan error, 1)

	go func() {
		log.Info().
			Str("addr", s.listener.Addr().String()).
			Str("root", s.root).
			Msg("HTTPサーバーを起動しています")
		if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveCh <- fmt.Errorf("サーバーの実行に失敗: %w", err)
		}
	}()

	// シグナルハンドリング
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-ctx.Done():
		log.Info().Msg("コンテキストがキャンセルされました")
	case sig := <-sigCh:
		log.Info().Stringer("signal", sig).Msg("シグナルを受信しました")
	case err := <-serveCh:
		return err
	}

	return s.Shutdown()
}

// Shutdown はサーバーをグレースフルにシャットダウンする
func (s *Server) Shutdown() error {
	log.Info().Msg("サーバーをシャットダウンしています...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("サーバーのシャットダウンに失敗: %w", err)
	}

	log.Info().Msg("サーバーが正常にシャットダウンされました")
	return nil
}

// Addr はリッスン中のアドレスを返す
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Root は配信ディレクトリの絶対パスを返す
func (s *Server) Root() string {
	return s.root
}

func (s *Server) printBanner() {
	port := s.config.Server.Port
	if addr, ok := s.listener.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}

	fmt.Fprintf(s.stdout, "🚀 Cache-Busting Server running on port %d\n", port)
	fmt.Fprintln(s.stdout, "📱 All files served with no-cache headers")
	fmt.Fprintln(s.stdout, "🔄 JavaScript and CSS will be reloaded fresh")
}

// resolveRoot は配信ディレクトリを起動ディレクトリ基準の絶対パスにする
func resolveRoot(dir string) (string, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("配信ディレクトリの解決に失敗: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("配信ディレクトリを開けません: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("配信ディレクトリではありません: %s", root)
	}

	return root, nil
}
