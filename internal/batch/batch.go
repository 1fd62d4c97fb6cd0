// internal/batch/batch.go

// Package batch 把資料目錄 (storage.Dir) 與核心模組接起來：
//   - 前台：session 登入時從有效帳號檔載入清單，登出時把摘要寫入 transactions/。
//   - 後台：合併所有待處理摘要、對帳、整檔覆寫帳本與有效帳號檔、寫出報告，
//     最後刪除已處理的摘要。
//
// 對帳遇到結構錯誤時不覆寫任何檔案，摘要保留以便修正後重跑。
package batch

import (
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"quinterac/internal/bank"
	"quinterac/internal/reconcile"
	"quinterac/internal/session"
	"quinterac/internal/storage"
	"quinterac/internal/txlog"
)

// SessionConfig 回傳以 d 為資料來源的 session 設定。
func SessionConfig(d storage.Dir, in session.Input, out io.Writer, logger *log.Logger) session.Config {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return session.Config{
		Input:  in,
		Output: out,
		LoadAccounts: func() ([]string, error) {
			lines, err := d.ValidAccountsLines()
			if err != nil {
				return nil, err
			}
			return bank.ParseValidAccounts(lines)
		},
		Flush: func(id, summary string) error {
			name, err := d.WriteSummary(id, summary)
			if err == nil {
				logger.Printf("summary %s written", name)
			}
			return err
		},
		Logger: logger,
	}
}

// Runner 執行一次後台對帳。
type Runner struct {
	Dir    storage.Dir
	Logger *log.Logger
}

func NewRunner(d storage.Dir, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{Dir: d, Logger: logger}
}

// Run 合併待處理摘要並對帳。回傳的 Report 已寫入 report.json。
// 結構錯誤時回傳錯誤，帳本、有效帳號檔與摘要皆保持原狀。
func (r *Runner) Run() (storage.Report, error) {
	rep := storage.Report{RunID: uuid.NewString()}

	names, err := r.Dir.PendingSummaries()
	if err != nil {
		return rep, fmt.Errorf("list summaries: %w", err)
	}
	rep.Summaries = names
	files := make([][]string, 0, len(names))
	for _, n := range names {
		lines, err := r.Dir.ReadSummary(n)
		if err != nil {
			return rep, fmt.Errorf("read summary %s: %w", n, err)
		}
		if err := txlog.CheckTerminated(lines); err != nil {
			return r.abort(rep, fmt.Errorf("summary %s: %w", n, err))
		}
		files = append(files, lines)
	}
	merged, err := txlog.Merge(files...)
	if err != nil {
		return r.abort(rep, err)
	}

	ledgerLines, err := r.Dir.LedgerLines()
	if err != nil {
		return rep, fmt.Errorf("read ledger: %w", err)
	}

	out, err := reconcile.NewEngine(r.Logger).Reconcile(ledgerLines, merged)
	if err != nil {
		return r.abort(rep, err)
	}

	if err := r.Dir.WriteLedger(out.LedgerText); err != nil {
		return rep, fmt.Errorf("write ledger: %w", err)
	}
	if err := r.Dir.WriteValidAccounts(out.ValidAccounts); err != nil {
		return rep, fmt.Errorf("write valid accounts: %w", err)
	}
	if err := r.Dir.RemoveSummaries(names); err != nil {
		return rep, fmt.Errorf("remove summaries: %w", err)
	}

	rep.Applied = out.Applied
	for _, d := range out.Diagnostics {
		rep.Skipped = append(rep.Skipped, storage.Skipped{Index: d.Index, Record: d.Record.String(), Reason: d.Err.Error()})
	}
	rep.Accounts = out.Ledger.Len()
	rep.Total = totalDollars(out.Ledger).StringFixed(2)

	r.Logger.Printf("run %s: %d summaries, %d applied, %d skipped, %d accounts",
		rep.RunID, len(names), rep.Applied, len(rep.Skipped), rep.Accounts)
	if err := r.Dir.SaveReport(rep); err != nil {
		return rep, fmt.Errorf("save report: %w", err)
	}
	return rep, nil
}

// abort 記錄結構錯誤並寫出只含錯誤訊息的報告；帳本、有效帳號檔與摘要不變。
func (r *Runner) abort(rep storage.Report, err error) (storage.Report, error) {
	rep.Error = err.Error()
	r.Logger.Printf("run %s: aborted: %v", rep.RunID, err)
	if serr := r.Dir.SaveReport(rep); serr != nil {
		r.Logger.Printf("run %s: save report: %v", rep.RunID, serr)
	}
	return rep, err
}

// totalDollars 以 decimal 逐戶加總，總額超出 int64 時也不會溢位。
func totalDollars(l *bank.Ledger) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range l.List() {
		sum = sum.Add(decimal.New(a.Balance, -2))
	}
	return sum
}
