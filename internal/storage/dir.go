// internal/storage/dir.go
//
// Dir 為一個資料目錄的檔案配置：
//
//	<root>/valid_accounts.txt   前台登入時讀取的有效帳號
//	<root>/master_accounts.txt  主帳本
//	<root>/transactions/*.txt   尚未對帳的 session 摘要
//	<root>/report.json          最近一次對帳報告
//
// 本層只處理檔案 I/O，不解析內容。所有覆寫皆為原子寫入。
package storage

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	ValidAccountsFile = "valid_accounts.txt"
	LedgerFile        = "master_accounts.txt"
	SummaryDir        = "transactions"
	ReportFile        = "report.json"

	summaryExt = ".txt"
)

// Dir 為資料目錄。
type Dir struct {
	Root string
}

// Open 確保目錄結構存在；第一次使用時建立空帳本與只含 0000000 的有效帳號檔。
func Open(root string) (Dir, error) {
	d := Dir{Root: root}
	if err := os.MkdirAll(d.path(SummaryDir), 0o755); err != nil {
		return Dir{}, err
	}
	if err := createIfMissing(d.path(ValidAccountsFile), "0000000\n"); err != nil {
		return Dir{}, err
	}
	if err := createIfMissing(d.path(LedgerFile), ""); err != nil {
		return Dir{}, err
	}
	return d, nil
}

func createIfMissing(path, content string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return WriteFileAtomic(path, []byte(content))
}

func (d Dir) path(elem ...string) string {
	return filepath.Join(append([]string{d.Root}, elem...)...)
}

// ReadLines 讀取檔案的所有行（不含換行字元）。
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}

func (d Dir) ValidAccountsLines() ([]string, error) { return ReadLines(d.path(ValidAccountsFile)) }

func (d Dir) LedgerLines() ([]string, error) { return ReadLines(d.path(LedgerFile)) }

// WriteLedger 以整檔覆寫的方式寫出帳本。
func (d Dir) WriteLedger(text string) error {
	return WriteFileAtomic(d.path(LedgerFile), []byte(text))
}

func (d Dir) WriteValidAccounts(text string) error {
	return WriteFileAtomic(d.path(ValidAccountsFile), []byte(text))
}

func (d Dir) SaveReport(r Report) error { return SaveReport(d.path(ReportFile), r) }

func (d Dir) LoadReport() (Report, error) { return LoadReport(d.path(ReportFile)) }

// WriteSummary 寫出一份 session 摘要並回傳檔名。
// 檔名以 UTC 時間戳開頭，字典序即寫出順序。
func (d Dir) WriteSummary(sessionID, text string) (string, error) {
	name := time.Now().UTC().Format("20060102T150405.000000000") + "_" + sessionID + summaryExt
	if err := WriteFileAtomic(d.path(SummaryDir, name), []byte(text)); err != nil {
		return "", err
	}
	return name, nil
}

// PendingSummaries 依寫出順序回傳尚未對帳的摘要檔名。
func (d Dir) PendingSummaries() ([]string, error) {
	entries, err := os.ReadDir(d.path(SummaryDir))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), summaryExt) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (d Dir) ReadSummary(name string) ([]string, error) {
	return ReadLines(d.path(SummaryDir, name))
}

// RemoveSummaries 刪除已對帳的摘要檔；已不存在的檔案略過。
func (d Dir) RemoveSummaries(names []string) error {
	var errs []error
	for _, n := range names {
		if err := os.Remove(d.path(SummaryDir, n)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
