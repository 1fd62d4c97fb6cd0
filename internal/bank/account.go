// Package bank 定義主帳本 (master ledger) 的領域模型與業務規則。
// 本檔定義 Account 結構，不含任何檔案或 HTTP 細節。

package bank

// NoAccount 為「無帳號」佔位值，也是有效帳號清單的結束標記；永遠不是真實帳號。
const NoAccount = "0000000"

// Account 為帳本中的一筆帳戶。
type Account struct {
	Number  string `json:"number"`
	Balance int64  `json:"balance"`
	Name    string `json:"name"`
}
