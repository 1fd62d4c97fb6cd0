// internal/server/router.go
//
// 本檔負責 HTTP 路由註冊，與 handler.go 分離。
package server

import "net/http"

// Router 建立並回傳整個 HTTP 處理鏈。
// 所有端點掛在 /api/v1/ 下，同時保留根路徑。
func (s *Server) Router() http.Handler {
	v1 := http.NewServeMux()

	v1.HandleFunc("/health", s.health)

	// 前台：POST /sessions
	v1.HandleFunc("/sessions", s.sessions)

	// 後台：POST /reconcile、GET /report
	v1.HandleFunc("/reconcile", s.reconcile)
	v1.HandleFunc("/report", s.report)

	// 帳本：GET /accounts
	v1.HandleFunc("/accounts", s.accounts)

	root := http.NewServeMux()
	root.Handle("/api/v1/", http.StripPrefix("/api/v1", v1))
	root.Handle("/", v1)

	return root
}
