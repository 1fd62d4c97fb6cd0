// internal/txlog/errors.go
//
// 交易摘要檔的結構錯誤。兩者對後台對帳都屬致命錯誤，整批中止。

package txlog

import "errors"

var (
	// ErrCorrupt 代表某一行無法解析（欄位數、代碼或數字格式錯誤）。
	ErrCorrupt = errors.New("corrupt transaction summary")

	// ErrMissingTerminator 代表檔案中沒有 EOS 結束紀錄。
	ErrMissingTerminator = errors.New("transaction summary missing EOS terminator")
)
