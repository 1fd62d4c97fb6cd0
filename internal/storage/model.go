// internal/storage/model.go
//
// 定義後台每次對帳後寫出的 JSON 報告結構。
// 報告只作為稽核紀錄，帳本與有效帳號仍以純文字檔為準。
package storage

import "time"

// Meta 為報告的中繼資料，用於辨識格式版本與產生時間。
type Meta struct {
	Storage   string    `json:"storage"`        // 儲存類型，固定為 "json_report"
	Version   int       `json:"version"`        // 結構版本號
	Timestamp time.Time `json:"timestamp"`      // 報告建立時間
	Note      string    `json:"note,omitempty"` // 備註
}

// Skipped 為一筆被略過的交易紀錄。
type Skipped struct {
	Index  int    `json:"index"`  // 在合併摘要中的位置（從 1 起算）
	Record string `json:"record"` // 原始紀錄行
	Reason string `json:"reason"` // 略過原因
}

// Report 為一次批次對帳的結果摘要。
type Report struct {
	Meta      Meta      `json:"_meta"`
	RunID     string    `json:"run_id"`
	Summaries []string  `json:"summaries"`       // 本次合併的摘要檔名
	Applied   int       `json:"applied"`         // 成功套用筆數
	Skipped   []Skipped `json:"skipped"`         // 略過的紀錄
	Accounts  int       `json:"accounts"`        // 對帳後帳戶數
	Total     string    `json:"total"`           // 對帳後總餘額（元，兩位小數）
	Error     string    `json:"error,omitempty"` // 結構錯誤導致中止時的訊息
}
