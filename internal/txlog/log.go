// internal/txlog/log.go

package txlog

import "strings"

// Log 為單一 session 的交易紀錄，只追加、不去重。
// 內容在登出前只存在記憶體中。
type Log struct {
	records []Record
}

// Append 追加一筆紀錄；重複與否由呼叫端負責。
func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
}

// SumMatching 加總指定種類、且關鍵帳號（見 Record.KeyAccount）等於 acct 的金額，
// 用於檢查每日限額：sum + pending <= limit 才可接受。
func (l *Log) SumMatching(kind Kind, acct string) int64 {
	var sum int64
	for _, r := range l.records {
		if r.Kind == kind && r.KeyAccount() == acct {
			sum += r.Cents
		}
	}
	return sum
}

// Serialize 依紀錄順序輸出，每筆一行，最後自動補上一筆 EndOfSession。
// 若日誌本身已以 EndOfSession 結尾則不重複補。
func (l *Log) Serialize() string {
	var b strings.Builder
	for _, r := range l.records {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	if n := len(l.records); n == 0 || l.records[n-1].Kind != EndOfSession {
		b.WriteString(NewEndOfSession().String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Records 回傳紀錄的拷貝。
func (l *Log) Records() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Log) Len() int { return len(l.records) }

// Clear 清空日誌（寫出摘要檔之後呼叫）。
func (l *Log) Clear() {
	l.records = nil
}

// Contains 回傳日誌中是否已有指定種類且 To 帳號相符的紀錄。
func (l *Log) Contains(kind Kind, to string) bool {
	for _, r := range l.records {
		if r.Kind == kind && r.To == to {
			return true
		}
	}
	return false
}
