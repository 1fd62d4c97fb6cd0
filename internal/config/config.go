// internal/config/config.go
//
// Package config 從環境變數載入各執行檔共用的設定並套用預設值：
//
//	BANK_ADDR        HTTP 監聽位址（預設 ":8080"）
//	BANK_DATA_DIR    資料目錄（預設 "data"）
//	BANK_LOG_PREFIX  log 前綴（預設空字串）
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config 為各執行檔共用的設定，全部來自環境變數。
type Config struct {
	Addr      string // BANK_ADDR，HTTP 監聽位址
	DataDir   string // BANK_DATA_DIR，資料目錄
	LogPrefix string // BANK_LOG_PREFIX
}

// Load 讀取環境變數並套用預設值。
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	c := Config{
		Addr:      strings.TrimSpace(getenv("BANK_ADDR")),
		DataDir:   strings.TrimSpace(getenv("BANK_DATA_DIR")),
		LogPrefix: getenv("BANK_LOG_PREFIX"),
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if !strings.Contains(c.Addr, ":") {
		return Config{}, fmt.Errorf("BANK_ADDR %q must be host:port or :port", c.Addr)
	}
	return c, nil
}
