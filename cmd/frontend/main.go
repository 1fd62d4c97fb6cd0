// cmd/frontend/main.go

// 互動式前台終端機：從標準輸入讀取指令，登出時把摘要寫入資料目錄的 transactions/。
//
//	frontend [data_dir]
//
// 未指定 data_dir 時使用 BANK_DATA_DIR（預設 "data"）。

package main

import (
	"log"
	"os"

	"quinterac/internal/batch"
	"quinterac/internal/config"
	"quinterac/internal/session"
	"quinterac/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if len(os.Args) > 2 {
		log.Fatal(`usage: frontend [data_dir]`)
	}
	dataDir := cfg.DataDir
	if len(os.Args) == 2 {
		dataDir = os.Args[1]
	}
	logger := log.New(os.Stderr, cfg.LogPrefix, log.LstdFlags)

	d, err := storage.Open(dataDir)
	if err != nil {
		logger.Fatalf("open data dir %s: %v", dataDir, err)
	}

	session.New(batch.SessionConfig(d, session.NewLineInput(os.Stdin, logger), os.Stdout, logger)).Run()
}
