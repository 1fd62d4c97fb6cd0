// internal/server/response.go
//
// 統一 HTTP 回應格式：成功與錯誤皆輸出 JSON。
package server

import (
	"encoding/json"
	"net/http"
)

// writeJSON 輸出 JSON 回應。
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr 輸出 {"error": "..."}。
func writeErr(w http.ResponseWriter, err error, code int) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}
