// internal/reconcile/reconcile.go

// Package reconcile 依檔案順序將合併後的交易摘要逐筆套用到主帳本。
//
// 錯誤分兩類：
//   - 業務規則違反（餘額不足、餘額溢位、重複建立、刪除條件不符、帳戶不存在）：
//     略過該筆、記錄診斷，繼續處理下一筆。
//   - 結構錯誤（帳本檔或摘要檔無法解析、缺少 EOS）：整批中止，回傳錯誤。
package reconcile

import (
	"errors"
	"fmt"
	"io"
	"log"

	"quinterac/internal/bank"
	"quinterac/internal/txlog"
)

// Diagnostic 描述一筆被略過的紀錄。Index 為該紀錄在輸入序列中的位置（從 1 起算）。
type Diagnostic struct {
	Index  int
	Record txlog.Record
	Err    error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("record %d (%s): %v", d.Index, d.Record, d.Err)
}

// Result 為一次套用的結果。
type Result struct {
	Applied     int
	Diagnostics []Diagnostic
}

// Engine 循序套用紀錄；Logger 為 nil 時不輸出診斷。
type Engine struct {
	Logger *log.Logger
}

// NewEngine 建立使用指定 logger 的引擎。
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Engine{Logger: logger}
}

// Apply 依序套用 records，遇到第一筆 EndOfSession 即停止。
// 不重排、不依帳戶分組；每筆要嘛完整生效，要嘛完全不改變帳本。
func (e *Engine) Apply(l *bank.Ledger, records []txlog.Record) (Result, error) {
	var res Result
	for i, r := range records {
		if r.Kind == txlog.EndOfSession {
			break
		}
		err := applyOne(l, r)
		switch {
		case err == nil:
			res.Applied++
		case isBusinessRule(err):
			d := Diagnostic{Index: i + 1, Record: r, Err: err}
			res.Diagnostics = append(res.Diagnostics, d)
			e.logf("skip %s", d)
		default:
			return res, fmt.Errorf("record %d (%s): %w", i+1, r, err)
		}
	}
	return res, nil
}

func applyOne(l *bank.Ledger, r txlog.Record) error {
	switch r.Kind {
	case txlog.Deposit:
		return l.Credit(r.To, r.Cents)
	case txlog.Withdraw:
		return l.Debit(r.From, r.Cents)
	case txlog.Transfer:
		return l.Transfer(r.From, r.To, r.Cents)
	case txlog.CreateAccount:
		return l.Create(r.To, r.Name)
	case txlog.DeleteAccount:
		return l.Delete(r.To, r.Name)
	case txlog.EndOfSession:
		return nil
	}
	return fmt.Errorf("%w: unknown transaction kind %d", txlog.ErrCorrupt, int(r.Kind))
}

func isBusinessRule(err error) bool {
	for _, target := range []error{
		bank.ErrNotFound,
		bank.ErrInsufficient,
		bank.ErrSameAccount,
		bank.ErrAlreadyExists,
		bank.ErrReserved,
		bank.ErrNameMismatch,
		bank.ErrNonZeroBalance,
		bank.ErrBadAmount,
		bank.ErrOverflow,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func (e *Engine) logf(format string, args ...any) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}
