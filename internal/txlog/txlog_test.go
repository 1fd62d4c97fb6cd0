// internal/txlog/txlog_test.go
//
// 測試紀錄編碼、session 日誌的限額加總與摘要檔解析。
package txlog

import (
	"errors"
	"strings"
	"testing"
)

func TestRecordString(t *testing.T) {
	cases := []struct {
		rec  Record
		want string
	}{
		{NewCreateAccount("1234567", "nam"), "NEW 1234567 000 0000000 nam"},
		{NewDeleteAccount("1001001", "Coolest account"), "DEL 1001001 000 0000000 Coolest account"},
		{NewDeposit("1234567", 33300), "DEP 1234567 33300 0000000 ***"},
		{NewWithdraw("1234567", 1000), "WDR 0000000 1000 1234567 ***"},
		{NewTransfer("1001001", "3333333", 500), "XFR 3333333 500 1001001 ***"},
		{NewEndOfSession(), "EOS 0000000 000 0000000 ***"},
	}
	for _, c := range cases {
		if got := c.rec.String(); got != c.want {
			t.Fatalf("String()=%q want=%q", got, c.want)
		}
	}
}

func TestParseRecord(t *testing.T) {
	r, err := ParseRecord("DEL 1001001 000 0000000 Coolest account")
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != DeleteAccount || r.To != "1001001" || r.Name != "Coolest account" || r.Cents != 0 {
		t.Fatalf("unexpected record: %+v", r)
	}

	r, err = ParseRecord("WDR 0000000 0001000 1234567 nam\r\n")
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != Withdraw || r.From != "1234567" || r.Cents != 1000 {
		t.Fatalf("unexpected record: %+v", r)
	}

	bad := []string{
		"",
		"DEP 1234567 100 0000000",
		"FOO 1234567 100 0000000 ***",
		"DEP 123456 100 0000000 ***",
		"DEP 1234567 1x0 0000000 ***",
		"DEP 1234567 -10 0000000 ***",
		"DEP 1234567 100 0000000 ",
	}
	for _, line := range bad {
		if _, err := ParseRecord(line); !errors.Is(err, ErrCorrupt) {
			t.Fatalf("ParseRecord(%q) want ErrCorrupt, got %v", line, err)
		}
	}
}

// TestLogSerialize 驗證輸出順序與自動補上的 EOS。
func TestLogSerialize(t *testing.T) {
	var l Log
	if got := l.Serialize(); got != "EOS 0000000 000 0000000 ***\n" {
		t.Fatalf("empty log serialize=%q", got)
	}

	l.Append(NewCreateAccount("1234567", "nam"))
	l.Append(NewDeposit("1234567", 100))
	want := "NEW 1234567 000 0000000 nam\n" +
		"DEP 1234567 100 0000000 ***\n" +
		"EOS 0000000 000 0000000 ***\n"
	if got := l.Serialize(); got != want {
		t.Fatalf("serialize=%q want=%q", got, want)
	}

	// 已有 EOS 時不重複補
	l.Append(NewEndOfSession())
	if got := l.Serialize(); got != want {
		t.Fatalf("serialize with EOS=%q want=%q", got, want)
	}

	l.Clear()
	if l.Len() != 0 {
		t.Fatalf("Len after Clear=%d", l.Len())
	}
}

// TestSumMatching 驗證每日限額統計依種類選擇 To 或 From 帳號。
func TestSumMatching(t *testing.T) {
	var l Log
	l.Append(NewDeposit("1111111", 200000))
	l.Append(NewDeposit("1111111", 200000))
	l.Append(NewDeposit("2222222", 5))
	l.Append(NewWithdraw("1111111", 300))
	l.Append(NewTransfer("1111111", "2222222", 40))
	l.Append(NewTransfer("2222222", "1111111", 7))

	if got := l.SumMatching(Deposit, "1111111"); got != 400000 {
		t.Fatalf("deposit sum=%d want=400000", got)
	}
	if got := l.SumMatching(Withdraw, "1111111"); got != 300 {
		t.Fatalf("withdraw sum=%d want=300", got)
	}
	// 轉帳以來源帳號計算
	if got := l.SumMatching(Transfer, "1111111"); got != 40 {
		t.Fatalf("transfer sum=%d want=40", got)
	}
	if got := l.SumMatching(Withdraw, "2222222"); got != 0 {
		t.Fatalf("withdraw sum=%d want=0", got)
	}
}

func TestParse(t *testing.T) {
	lines := []string{
		"NEW 1234567 000 0000000 nam",
		"",
		"DEP 1234567 500 0000000 ***",
		"EOS 0000000 000 0000000 ***",
		"DEP 1234567 999 0000000 ***",
	}
	recs, err := Parse(lines)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[0].Kind != CreateAccount || recs[1].Cents != 500 {
		t.Fatalf("unexpected records: %+v", recs)
	}

	if _, err := Parse([]string{"NEW 1234567 000 0000000 nam"}); !errors.Is(err, ErrMissingTerminator) {
		t.Fatalf("want ErrMissingTerminator, got %v", err)
	}
	if _, err := Parse([]string{"NEW 1234567", "EOS 0000000 000 0000000 ***"}); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("want ErrCorrupt, got %v", err)
	}
}

func TestMerge(t *testing.T) {
	a := []string{"NEW 1001001 000 0000000 Acct 1", "EOS 0000000 000 0000000 ***"}
	b := []string{"DEP 1001001 100 0000000 ***", "EOS 0000000 000 0000000 ***\r", ""}

	got, err := Merge(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"NEW 1001001 000 0000000 Acct 1",
		"DEP 1001001 100 0000000 ***",
		"EOS 0000000 000 0000000 ***",
	}
	if len(got) != len(want) {
		t.Fatalf("merge len=%d want=%d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("merge[%d]=%q want=%q", i, got[i], want[i])
		}
	}

	if got, err := Merge(); err != nil || len(got) != 1 {
		t.Fatalf("empty merge=%q err=%v want only EOS", got, err)
	}
}

// TestMergeRejectsUnterminatedSummary 驗證缺少結束紀錄或結束紀錄格式錯誤的摘要檔會讓整個合併失敗。
func TestMergeRejectsUnterminatedSummary(t *testing.T) {
	ok := []string{"NEW 1001001 000 0000000 Acct 1", "EOS 0000000 000 0000000 ***"}

	cases := []struct {
		name  string
		lines []string
		want  error
	}{
		{"no terminator", []string{"DEP 1234567 500 0000000 ***"}, ErrMissingTerminator},
		{"empty file", nil, ErrMissingTerminator},
		{"terminator not last", []string{"EOS 0000000 000 0000000 ***", "DEP 1234567 500 0000000 ***"}, ErrMissingTerminator},
		{"malformed terminator", []string{"DEP 1234567 500 0000000 ***", "EOS garbage"}, ErrCorrupt},
		{"malformed interior terminator", []string{"EOS", "EOS 0000000 000 0000000 ***"}, ErrCorrupt},
	}
	for _, c := range cases {
		got, err := Merge(ok, c.lines)
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: want %v, got %v", c.name, c.want, err)
		}
		if got != nil {
			t.Fatalf("%s: merge output=%q want nil", c.name, got)
		}
		if !strings.Contains(err.Error(), "summary 2") {
			t.Fatalf("%s: error %q does not name the file", c.name, err)
		}
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\n\n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("SplitLines=%q", got)
	}
	if SplitLines("") != nil {
		t.Fatal("SplitLines(\"\") should be nil")
	}
}
