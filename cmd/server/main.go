// cmd/server/main.go

// 以 HTTP 提供前台 session 與後台對帳。
// 設定由環境變數載入（BANK_ADDR、BANK_DATA_DIR、BANK_LOG_PREFIX）。
// 收到 SIGINT/SIGTERM 時停止接受新請求，等進行中的請求（包含對帳寫檔）完成後才結束。

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quinterac/internal/config"
	"quinterac/internal/server"
	"quinterac/internal/storage"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := log.New(os.Stderr, cfg.LogPrefix, log.LstdFlags)

	d, err := storage.Open(cfg.DataDir)
	if err != nil {
		logger.Fatalf("open data dir %s: %v", cfg.DataDir, err)
	}

	s := server.NewServer(d, logger)
	srv := &http.Server{Addr: cfg.Addr, Handler: s.Router()}

	// 背景 goroutine 監聽結束訊號，關閉伺服器前等待進行中的請求
	done := make(chan struct{})
	go func() {
		defer close(done)
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		sig := <-ch
		logger.Printf("received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}()

	logger.Printf("Bank server running at %s (data dir %s)", cfg.Addr, cfg.DataDir)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(err)
	}
	<-done
}
