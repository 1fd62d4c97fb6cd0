// internal/server/handler.go
//
// Package server
// ─────────────────────────────────────────────
// 以 HTTP 提供前台與後台的操作入口：
//   - POST /sessions   以一串輸入執行一個前台 session，登出時寫出摘要
//   - POST /reconcile  合併待處理摘要並對帳
//   - GET  /accounts   目前帳本
//   - GET  /report     最近一次對帳報告
//
// 所有會讀寫資料目錄的請求以同一把鎖序列化；核心模組本身不加鎖。
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"

	"quinterac/internal/bank"
	"quinterac/internal/batch"
	"quinterac/internal/session"
	"quinterac/internal/storage"
	"quinterac/internal/txlog"
)

// maxInputs 限制單一 session 請求的輸入筆數。
const maxInputs = 10000

// Server 為 HTTP 層核心結構。
type Server struct {
	dir    storage.Dir
	logger *log.Logger
	mu     sync.Mutex
}

// NewServer 建立以 d 為資料目錄的伺服器；logger 可為 nil。
func NewServer(d storage.Dir, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Server{dir: d, logger: logger}
}

type sessionRequest struct {
	Input []string `json:"input"`
}

type sessionResponse struct {
	Transcript string   `json:"transcript"`
	Summaries  []string `json:"summaries"`
	State      string   `json:"state"`
}

// sessions 處理 POST /sessions：輸入耗盡即結束，未登出的紀錄不寫出。
func (s *Server) sessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req sessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, err, http.StatusBadRequest)
		return
	}
	if len(req.Input) > maxInputs {
		writeErr(w, errTooManyInputs, http.StatusRequestEntityTooLarge)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var out bytes.Buffer
	written := []string{}
	cfg := batch.SessionConfig(s.dir, session.NewSliceInput(req.Input), &out, s.logger)
	cfg.Flush = func(id, summary string) error {
		name, err := s.dir.WriteSummary(id, summary)
		if err != nil {
			return err
		}
		written = append(written, name)
		return nil
	}
	sess := session.New(cfg)
	sess.Run()

	writeJSON(w, http.StatusOK, sessionResponse{
		Transcript: out.String(),
		Summaries:  written,
		State:      sess.State().String(),
	})
}

// reconcile 處理 POST /reconcile。
// 結構錯誤回傳 422 與報告；其他 I/O 錯誤回傳 500。
func (s *Server) reconcile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rep, err := batch.NewRunner(s.dir, s.logger).Run()
	if err != nil {
		if isStructural(err) {
			writeJSON(w, http.StatusUnprocessableEntity, rep)
			return
		}
		writeErr(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func isStructural(err error) bool {
	return errors.Is(err, txlog.ErrCorrupt) ||
		errors.Is(err, txlog.ErrMissingTerminator) ||
		errors.Is(err, bank.ErrCorrupt)
}

// accounts 處理 GET /accounts：依帳號遞減列出帳本。
func (s *Server) accounts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	lines, err := s.dir.LedgerLines()
	s.mu.Unlock()
	if err != nil {
		writeErr(w, err, http.StatusInternalServerError)
		return
	}
	l, err := bank.Load(lines)
	if err != nil {
		writeErr(w, err, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, l.List())
}

// report 處理 GET /report；尚未對帳過時回傳 404。
func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.mu.Lock()
	rep, err := s.dir.LoadReport()
	s.mu.Unlock()
	if err != nil {
		writeErr(w, errNoReport, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// health 提供健康檢查端點：GET /health。
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

var (
	errTooManyInputs = errors.New("too many inputs")
	errNoReport      = errors.New("no reconciliation report yet")
)
