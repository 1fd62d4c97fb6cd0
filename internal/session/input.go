// internal/session/input.go

package session

import (
	"bufio"
	"io"
	"log"
)

// Input 為指令來源：每次回傳一個已切好的輸入；來源耗盡時 ok 為 false。
type Input interface {
	Next() (string, bool)
}

// SliceInput 依序回傳預先準備好的輸入，用於腳本化 session（測試、HTTP）。
type SliceInput struct {
	items []string
	pos   int
}

func NewSliceInput(items []string) *SliceInput {
	return &SliceInput{items: items}
}

func (s *SliceInput) Next() (string, bool) {
	if s.pos >= len(s.items) {
		return "", false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

// maxLineBytes 為單行輸入上限；超過時讀取失敗並結束輸入。
const maxLineBytes = 1 << 20

// LineInput 從 io.Reader 逐行讀取（例如 os.Stdin）。
// 讀取錯誤（例如單行超過 maxLineBytes）會寫入 logger，之後視為輸入耗盡。
type LineInput struct {
	sc     *bufio.Scanner
	logger *log.Logger
}

// NewLineInput 建立逐行輸入；logger 可為 nil。
func NewLineInput(r io.Reader, logger *log.Logger) *LineInput {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &LineInput{sc: sc, logger: logger}
}

func (l *LineInput) Next() (string, bool) {
	if !l.sc.Scan() {
		if err := l.sc.Err(); err != nil {
			l.logger.Printf("input: %v", err)
		}
		return "", false
	}
	return l.sc.Text(), true
}
