package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tasukuchiba/hello_fullstack_app/internal/config"
	"github.com/tasukuchiba/hello_fullstack_app/internal/handlers"
	"github.com/tasukuchiba/hello_fullstack_app/internal/logging"
	"github.com/tasukuchiba/hello_fullstack_app/internal/middleware"
	"github.com/tasukuchiba/hello_fullstack_app/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run はサーバーの初期化とライフサイクル管理を行う。
// os.Exitを直接呼ばずにエラーを返すことで、deferによる後始末を保証する。
func run() error {
	// .envがあれば読み込む（なくてもエラーにしない）
	_ = godotenv.Load()

	// 設定とロガーの初期化
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	// ハンドラーの初期化
	messageHandler := handlers.NewMessageHandler()
	webHandler, err := web.Handler(cfg.StaticDir)
	if err != nil {
		return fmt.Errorf("frontend assets error: %w", err)
	}

	// ルーティング設定
	mux := http.NewServeMux()
	mux.HandleFunc("/api/message", messageHandler.HandleMessage)
	mux.HandleFunc("/health", handlers.HandleHealth)
	mux.Handle("/", webHandler)

	// ミドルウェア: アクセスログ → CORS → ルーティング
	handler := middleware.NewRequestLogger(log).Wrap(
		middleware.NewCORS(cfg.Origins()).Wrap(mux),
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler,
	}

	// SIGINT/SIGTERMでグレースフルシャットダウンする
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Strs("allowed_origins", cfg.Origins()).
			Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}
