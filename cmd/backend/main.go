// cmd/backend/main.go

// 後台批次對帳：合併資料目錄中所有待處理摘要，更新主帳本與有效帳號檔。
//
//	backend [data_dir]
//
// 結構錯誤時以非零狀態結束，且不修改任何檔案。

package main

import (
	"log"
	"os"

	"quinterac/internal/batch"
	"quinterac/internal/config"
	"quinterac/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if len(os.Args) > 2 {
		log.Fatal(`usage: backend [data_dir]`)
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

	rep, err := batch.NewRunner(d, logger).Run()
	if err != nil {
		logger.Fatalf("reconcile: %v", err)
	}
	for _, s := range rep.Skipped {
		logger.Printf("skipped record %d %q: %s", s.Index, s.Record, s.Reason)
	}
	logger.Printf("ledger updated: %d accounts, total $%s", rep.Accounts, rep.Total)
}
