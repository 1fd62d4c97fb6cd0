// internal/storage/dir_test.go
package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenInitializesLayout(t *testing.T) {
	root := filepath.Join(t.TempDir(), "data")
	d, err := Open(root)
	if err != nil {
		t.Fatal(err)
	}

	lines, err := d.ValidAccountsLines()
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 1 || lines[0] != "0000000" {
		t.Fatalf("valid accounts=%q", lines)
	}
	ledger, err := d.LedgerLines()
	if err != nil || len(ledger) != 0 {
		t.Fatalf("ledger=%q err=%v", ledger, err)
	}

	// 再次開啟不得覆寫既有內容
	if err := d.WriteLedger("1234567 5 nam\n"); err != nil {
		t.Fatal(err)
	}
	d2, err := Open(root)
	if err != nil {
		t.Fatal(err)
	}
	ledger, _ = d2.LedgerLines()
	if len(ledger) != 1 || ledger[0] != "1234567 5 nam" {
		t.Fatalf("ledger overwritten: %q", ledger)
	}
}

func TestSummariesLifecycle(t *testing.T) {
	d, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	n1, err := d.WriteSummary("aaa", "DEP 1234567 5 0000000 ***\nEOS 0000000 000 0000000 ***\n")
	if err != nil {
		t.Fatal(err)
	}
	n2, err := d.WriteSummary("bbb", "EOS 0000000 000 0000000 ***\n")
	if err != nil {
		t.Fatal(err)
	}
	// 非 .txt 檔不列入
	if err := os.WriteFile(filepath.Join(d.Root, SummaryDir, "notes.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	names, err := d.PendingSummaries()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != n1 || names[1] != n2 {
		t.Fatalf("pending=%q want=[%s %s]", names, n1, n2)
	}

	lines, err := d.ReadSummary(n1)
	if err != nil || len(lines) != 2 {
		t.Fatalf("lines=%q err=%v", lines, err)
	}

	if err := d.RemoveSummaries(append(names, "missing.txt")); err != nil {
		t.Fatal(err)
	}
	names, _ = d.PendingSummaries()
	if len(names) != 0 {
		t.Fatalf("pending after remove=%q", names)
	}
}
