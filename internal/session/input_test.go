// internal/session/input_test.go

package session

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestLineInput(t *testing.T) {
	var logged bytes.Buffer
	in := NewLineInput(strings.NewReader("login\r\natm\n"), log.New(&logged, "", 0))

	for _, want := range []string{"login", "atm"} {
		got, ok := in.Next()
		if !ok || strings.TrimRight(got, "\r") != want {
			t.Fatalf("Next()=%q,%v want %q", got, ok, want)
		}
	}
	if _, ok := in.Next(); ok {
		t.Fatal("Next() after EOF should report exhaustion")
	}
	if logged.Len() != 0 {
		t.Fatalf("clean EOF logged %q", logged.String())
	}
}

// TestLineInputReportsOversizedLine 驗證超長的一行會結束輸入並寫入 log，而不是被當成正常 EOF。
func TestLineInputReportsOversizedLine(t *testing.T) {
	var logged bytes.Buffer
	long := strings.Repeat("x", maxLineBytes+1)
	in := NewLineInput(strings.NewReader("login\n"+long+"\nlogout\n"), log.New(&logged, "", 0))

	if got, ok := in.Next(); !ok || got != "login" {
		t.Fatalf("Next()=%q,%v want login", got, ok)
	}
	if _, ok := in.Next(); ok {
		t.Fatal("oversized line should end input")
	}
	if !strings.Contains(logged.String(), "too long") {
		t.Fatalf("log=%q", logged.String())
	}
}
