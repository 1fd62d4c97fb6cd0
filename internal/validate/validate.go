// internal/validate/validate.go

// Package validate 提供帳號、戶名與金額的語法檢查。
// 皆為純函式，不做任何 I/O；前台 session 用於互動重試，後台只依賴檔案格式檢查。
package validate

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrParse 代表金額字串無法解析為非負整數（單位：分）。
var ErrParse = errors.New("amount is not a non-negative whole number")

const (
	accountNumberLen = 7
	minNameLen       = 3
	maxNameLen       = 30
	maxCentsDigits   = 18 // int64 可安全容納的十進位位數
)

// AccountNumber 檢查帳號：恰好 7 位 ASCII 數字且首位為 1–9。
func AccountNumber(s string) bool {
	if len(s) != accountNumberLen || s[0] == '0' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// AccountName 檢查戶名：3–30 個字元，首尾不得為空白，
// 中間只允許文字字元（字母、數字、底線）或空白。
func AccountName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < minNameLen || n > maxNameLen {
		return false
	}
	runes := []rune(s)
	first, last := runes[0], runes[len(runes)-1]
	if unicode.IsSpace(first) || unicode.IsSpace(last) {
		return false
	}
	for _, r := range runes[1 : len(runes)-1] {
		if !isWordRune(r) && r != ' ' {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Amount 去除千分位逗號後解析為非負整數的分。
// 空字串、帶正負號、非數字或溢位皆回傳包裝 ErrParse 的錯誤。
func Amount(s string) (int64, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if digits == "" {
		return 0, fmt.Errorf("%w: empty input", ErrParse)
	}
	digits = strings.TrimLeft(digits, "0")
	if len(digits) > maxCentsDigits {
		return 0, fmt.Errorf("%w: %q is too large", ErrParse, s)
	}
	var cents int64
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrParse, s)
		}
		cents = cents*10 + int64(c-'0')
	}
	return cents, nil
}
