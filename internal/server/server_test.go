// internal/server/server_test.go
//
// 本檔為 server 層的整合測試：以 httptest.Server 模擬完整流程，
// 驗證前台 session、後台對帳、帳本查詢與錯誤代碼。
package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"quinterac/internal/bank"
	"quinterac/internal/storage"
)

// doJSON 為測試輔助函式：送出 JSON 請求並驗證狀態碼；out 非 nil 時解析回應。
func doJSON(t *testing.T, c *http.Client, method, url string, body any, wantCode int, out any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.Do(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != wantCode {
		t.Fatalf("%s %s code=%d want=%d", method, url, resp.StatusCode, wantCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
}

func newTestServer(t *testing.T) (*httptest.Server, storage.Dir) {
	t.Helper()
	d, err := storage.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(NewServer(d, nil).Router())
	t.Cleanup(ts.Close)
	return ts, d
}

// TestHTTPFlow 建立帳戶 → 對帳 → 存款 → 對帳 → 查詢帳本。
func TestHTTPFlow(t *testing.T) {
	ts, _ := newTestServer(t)
	cli := ts.Client()

	doJSON(t, cli, "GET", ts.URL+"/health", nil, 200, nil)
	doJSON(t, cli, "GET", ts.URL+"/report", nil, 404, nil)

	// 1️⃣ agent 建立帳戶
	var sr sessionResponse
	doJSON(t, cli, "POST", ts.URL+"/sessions", map[string]any{
		"input": []string{"login", "agent", "createacct", "1234567", "nam", "logout"},
	}, 200, &sr)
	if len(sr.Summaries) != 1 || sr.State != "idle" {
		t.Fatalf("session response=%+v", sr)
	}
	if !strings.Contains(sr.Transcript, "Account creation recorded") {
		t.Fatalf("transcript=%q", sr.Transcript)
	}

	// 2️⃣ 對帳
	var rep storage.Report
	doJSON(t, cli, "POST", ts.URL+"/api/v1/reconcile", nil, 200, &rep)
	if rep.Applied != 1 || rep.Accounts != 1 {
		t.Fatalf("report=%+v", rep)
	}

	// 3️⃣ ATM 存款（登入時讀到新的有效帳號清單），未登出的 session 不寫出
	doJSON(t, cli, "POST", ts.URL+"/sessions", map[string]any{
		"input": []string{"login", "atm", "deposit", "1234567", "1,500", "logout"},
	}, 200, &sr)
	if len(sr.Summaries) != 1 {
		t.Fatalf("session response=%+v", sr)
	}
	doJSON(t, cli, "POST", ts.URL+"/sessions", map[string]any{
		"input": []string{"login", "atm", "deposit", "1234567", "99"},
	}, 200, &sr)
	if len(sr.Summaries) != 0 || sr.State != "atm" {
		t.Fatalf("session response=%+v", sr)
	}
	doJSON(t, cli, "POST", ts.URL+"/reconcile", nil, 200, &rep)

	// 4️⃣ 查詢帳本
	var accts []bank.Account
	doJSON(t, cli, "GET", ts.URL+"/accounts", nil, 200, &accts)
	if len(accts) != 1 || accts[0].Number != "1234567" || accts[0].Balance != 1500 || accts[0].Name != "nam" {
		t.Fatalf("accounts=%+v", accts)
	}

	var saved storage.Report
	doJSON(t, cli, "GET", ts.URL+"/report", nil, 200, &saved)
	if saved.RunID != rep.RunID || saved.Total != "15.00" {
		t.Fatalf("saved report=%+v", saved)
	}
}

// TestReconcileCorruptSummary 驗證結構錯誤回傳 422。
func TestReconcileCorruptSummary(t *testing.T) {
	ts, d := newTestServer(t)
	if _, err := d.WriteSummary("x", "NEW 1234567\n"); err != nil {
		t.Fatal(err)
	}
	var rep storage.Report
	doJSON(t, ts.Client(), "POST", ts.URL+"/reconcile", nil, 422, &rep)
	if rep.Error == "" {
		t.Fatalf("report=%+v", rep)
	}
}

func TestMethodNotAllowedAndBadJSON(t *testing.T) {
	ts, _ := newTestServer(t)
	cli := ts.Client()

	doJSON(t, cli, "GET", ts.URL+"/sessions", nil, 405, nil)
	doJSON(t, cli, "GET", ts.URL+"/reconcile", nil, 405, nil)
	doJSON(t, cli, "POST", ts.URL+"/accounts", nil, 405, nil)

	req, _ := http.NewRequest("POST", ts.URL+"/sessions", bytes.NewBufferString("{bad json}"))
	resp, err := cli.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != 400 {
		t.Fatalf("bad json code=%d want 400", resp.StatusCode)
	}
}
