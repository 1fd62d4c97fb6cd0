// internal/reconcile/run.go

package reconcile

import (
	"fmt"

	"quinterac/internal/bank"
	"quinterac/internal/txlog"
)

// Output 為一次完整對帳的產出，可直接覆寫帳本檔與有效帳號檔。
type Output struct {
	Ledger        *bank.Ledger
	LedgerText    string
	ValidAccounts string
	Result
}

// Reconcile 解析帳本檔與合併摘要檔的各行並套用。
// 兩者任一無法解析即回傳錯誤（包裝 bank.ErrCorrupt、txlog.ErrCorrupt 或
// txlog.ErrMissingTerminator），此時不產生任何輸出。
func (e *Engine) Reconcile(ledgerLines, summaryLines []string) (Output, error) {
	l, err := bank.Load(ledgerLines)
	if err != nil {
		return Output{}, fmt.Errorf("load ledger: %w", err)
	}
	records, err := txlog.Parse(summaryLines)
	if err != nil {
		return Output{}, fmt.Errorf("parse transaction summary: %w", err)
	}
	res, err := e.Apply(l, records)
	if err != nil {
		return Output{}, err
	}
	return Output{
		Ledger:        l,
		LedgerText:    l.Serialize(),
		ValidAccounts: l.FormatValidAccounts(),
		Result:        res,
	}, nil
}
