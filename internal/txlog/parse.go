// internal/txlog/parse.go

package txlog

import (
	"fmt"
	"strings"
)

// Parse 解析摘要檔各行，回傳第一筆 EOS 之前的紀錄（不含 EOS）。
// 空白行略過；第一筆 EOS 之後的內容不再讀取。
// 錯誤訊息中的行號從 1 起算。
func Parse(lines []string) ([]Record, error) {
	var out []Record
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if r.Kind == EndOfSession {
			return out, nil
		}
		out = append(out, r)
	}
	return nil, ErrMissingTerminator
}

// CheckTerminated 檢查單一摘要檔：最後一個非空白行必須恰為 EOS 結束紀錄，
// 其餘以 EOS 開頭的行也必須是完整的結束紀錄。
func CheckTerminated(lines []string) error {
	eos := NewEndOfSession().String()
	last := ""
	for i, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if isEOSLine(line) && line != eos {
			return fmt.Errorf("line %d: %w: malformed terminator %q", i+1, ErrCorrupt, line)
		}
		last = line
	}
	if last != eos {
		return ErrMissingTerminator
	}
	return nil
}

// Merge 合併多個 session 的摘要檔：去掉各檔的 EOS 行，最後只保留一筆 EOS。
// 各檔之間維持傳入順序；任一檔未通過 CheckTerminated 即回傳錯誤，不產生輸出。
func Merge(files ...[]string) ([]string, error) {
	var out []string
	for i, lines := range files {
		if err := CheckTerminated(lines); err != nil {
			return nil, fmt.Errorf("summary %d: %w", i+1, err)
		}
		for _, line := range lines {
			line = strings.TrimRight(line, "\r\n")
			if strings.TrimSpace(line) == "" || isEOSLine(line) {
				continue
			}
			out = append(out, line)
		}
	}
	return append(out, NewEndOfSession().String()), nil
}

func isEOSLine(line string) bool {
	return line == EndOfSession.Code() || strings.HasPrefix(line, EndOfSession.Code()+" ")
}

// SplitLines 將檔案內容切成行，去除結尾換行與 \r。
func SplitLines(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, "\r")
	}
	return lines
}
