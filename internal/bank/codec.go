// internal/bank/codec.go
//
// 帳本檔與有效帳號檔的文字格式：
//   - 帳本檔：每行 "NUMBER BALANCE NAME"，無表頭，寫出時依帳號由大到小排序。
//   - 有效帳號檔：每行一個帳號，最後一行為 0000000。

package bank

import (
	"fmt"
	"strconv"
	"strings"

	"quinterac/internal/validate"
)

// Load 由帳本檔各行建立 Ledger；讀取順序不影響結果。
// 空白行略過；欄位不足、帳號非法、重複帳號、餘額非數字或為負皆回傳包裝 ErrCorrupt 的錯誤。
func Load(lines []string) (*Ledger, error) {
	l := NewLedger()
	for i, line := range lines {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		a, err := parseAccount(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if _, dup := l.accts[a.Number]; dup {
			return nil, fmt.Errorf("line %d: %w: duplicate account %s", i+1, ErrCorrupt, a.Number)
		}
		l.accts[a.Number] = &a
	}
	return l, nil
}

func parseAccount(line string) (Account, error) {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) != 3 || fields[2] == "" {
		return Account{}, fmt.Errorf("%w: want \"number balance name\", got %q", ErrCorrupt, line)
	}
	if !validate.AccountNumber(fields[0]) {
		return Account{}, fmt.Errorf("%w: bad account number %q", ErrCorrupt, fields[0])
	}
	bal, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil || bal < 0 {
		return Account{}, fmt.Errorf("%w: bad balance %q", ErrCorrupt, fields[1])
	}
	return Account{Number: fields[0], Balance: bal, Name: fields[2]}, nil
}

// Serialize 輸出帳本檔內容，每個帳戶一行，依帳號由大到小排序。
func (l *Ledger) Serialize() string {
	var b strings.Builder
	for _, a := range l.List() {
		fmt.Fprintf(&b, "%s %d %s\n", a.Number, a.Balance, a.Name)
	}
	return b.String()
}

// FormatValidAccounts 輸出有效帳號檔內容。
func (l *Ledger) FormatValidAccounts() string {
	return strings.Join(l.ValidAccounts(), "\n") + "\n"
}

// ParseValidAccounts 解析有效帳號檔，回傳結束標記之前的帳號。
// 前台只讀取此檔，因此採寬鬆策略：空白行略過，遇到 0000000 即停止；
// 非法帳號回傳包裝 ErrCorrupt 的錯誤。
func ParseValidAccounts(lines []string) ([]string, error) {
	var out []string
	for i, line := range lines {
		n := strings.TrimSpace(line)
		switch {
		case n == "":
			continue
		case n == NoAccount:
			return out, nil
		case !validate.AccountNumber(n):
			return nil, fmt.Errorf("line %d: %w: bad account number %q", i+1, ErrCorrupt, n)
		}
		out = append(out, n)
	}
	return out, nil
}
