// internal/txlog/record.go

// Package txlog 定義交易摘要 (transaction summary) 的紀錄格式與 session 日誌。
// 一行一筆紀錄，欄位以空白分隔，固定順序為 KIND TO CENTS FROM NAME；
// 戶名可含空白，因此 NAME 為第四個空白之後的整段文字。
package txlog

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind 為封閉的交易種類集合，每種對應固定的三字母代碼。
type Kind int

const (
	Deposit Kind = iota + 1
	Withdraw
	Transfer
	CreateAccount
	DeleteAccount
	EndOfSession
)

// 未使用欄位的佔位值。
const (
	NoAccount  = "0000000"
	NoName     = "***"
	emptyCents = "000"
)

// Code 回傳線路格式上的三字母代碼。
func (k Kind) Code() string {
	switch k {
	case Deposit:
		return "DEP"
	case Withdraw:
		return "WDR"
	case Transfer:
		return "XFR"
	case CreateAccount:
		return "NEW"
	case DeleteAccount:
		return "DEL"
	case EndOfSession:
		return "EOS"
	}
	return "???"
}

func (k Kind) String() string { return k.Code() }

// ParseKind 將三字母代碼轉回 Kind。
func ParseKind(code string) (Kind, bool) {
	switch code {
	case "DEP":
		return Deposit, true
	case "WDR":
		return Withdraw, true
	case "XFR":
		return Transfer, true
	case "NEW":
		return CreateAccount, true
	case "DEL":
		return DeleteAccount, true
	case "EOS":
		return EndOfSession, true
	}
	return 0, false
}

// Record 為一筆交易紀錄；未使用的欄位帶佔位值。
//   - CreateAccount / DeleteAccount：To + Name
//   - Deposit：To + Cents
//   - Withdraw：From + Cents
//   - Transfer：To + From + Cents
//   - EndOfSession：全為佔位值
type Record struct {
	Kind  Kind
	To    string
	Cents int64
	From  string
	Name  string
}

// KeyAccount 回傳每日限額統計所依據的帳號：
// 提款與轉帳看 From，其餘看 To。
func (r Record) KeyAccount() string {
	switch r.Kind {
	case Withdraw, Transfer:
		return r.From
	default:
		return r.To
	}
}

// String 將紀錄編碼為一行（不含換行）。
func (r Record) String() string {
	cents := emptyCents
	if r.Cents != 0 {
		cents = strconv.FormatInt(r.Cents, 10)
	}
	return strings.Join([]string{
		r.Kind.Code(),
		orDefault(r.To, NoAccount),
		cents,
		orDefault(r.From, NoAccount),
		orDefault(r.Name, NoName),
	}, " ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// NewDeposit 等建構函式負責填入正確的佔位欄位。
func NewDeposit(to string, cents int64) Record {
	return Record{Kind: Deposit, To: to, Cents: cents, From: NoAccount, Name: NoName}
}

func NewWithdraw(from string, cents int64) Record {
	return Record{Kind: Withdraw, To: NoAccount, Cents: cents, From: from, Name: NoName}
}

func NewTransfer(from, to string, cents int64) Record {
	return Record{Kind: Transfer, To: to, Cents: cents, From: from, Name: NoName}
}

func NewCreateAccount(acct, name string) Record {
	return Record{Kind: CreateAccount, To: acct, From: NoAccount, Name: name}
}

func NewDeleteAccount(acct, name string) Record {
	return Record{Kind: DeleteAccount, To: acct, From: NoAccount, Name: name}
}

func NewEndOfSession() Record {
	return Record{Kind: EndOfSession, To: NoAccount, From: NoAccount, Name: NoName}
}

// ParseRecord 解析單行紀錄；任何結構錯誤皆包裝 ErrCorrupt。
// 帳號欄位只檢查為 7 位數字（允許佔位值 0000000），商業規則留給對帳階段。
func ParseRecord(line string) (Record, error) {
	fields := strings.SplitN(strings.TrimRight(line, "\r\n"), " ", 5)
	if len(fields) != 5 {
		return Record{}, fmt.Errorf("%w: want 5 fields, got %d", ErrCorrupt, len(fields))
	}
	kind, ok := ParseKind(fields[0])
	if !ok {
		return Record{}, fmt.Errorf("%w: unknown transaction code %q", ErrCorrupt, fields[0])
	}
	if !isDigits(fields[1], 7) || !isDigits(fields[3], 7) {
		return Record{}, fmt.Errorf("%w: bad account field in %q", ErrCorrupt, line)
	}
	if !isDigits(fields[2], 0) {
		return Record{}, fmt.Errorf("%w: bad cents field %q", ErrCorrupt, fields[2])
	}
	cents, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: cents %q: %v", ErrCorrupt, fields[2], err)
	}
	if fields[4] == "" {
		return Record{}, fmt.Errorf("%w: empty name field", ErrCorrupt)
	}
	return Record{Kind: kind, To: fields[1], Cents: cents, From: fields[3], Name: fields[4]}, nil
}

// isDigits 檢查 s 全為 ASCII 數字；n > 0 時另要求長度恰為 n。
func isDigits(s string, n int) bool {
	if s == "" || (n > 0 && len(s) != n) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
