// internal/session/prompts.go
//
// 多步驟指令的單一欄位輸入：格式或規則不符時提示錯誤並重新詢問，
// 直到取得合法值或使用者取消。

package session

import (
	"strings"

	"quinterac/internal/txlog"
	"quinterac/internal/validate"
)

// askNewAccountNumber 詢問尚未存在的帳號：不在登入時的有效清單中，
// 也未在本 session 中建立過。
func (s *Session) askNewAccountNumber() (string, bool) {
	for {
		text, ok := s.ask(promptAccount)
		if !ok {
			return "", false
		}
		number := strings.TrimSpace(text)
		switch {
		case !validate.AccountNumber(number):
			s.say(msgInvalidNumber)
		case s.listed(number) || s.log.Contains(txlog.CreateAccount, number):
			s.say(msgAccountExists)
		default:
			return number, true
		}
	}
}

// askListedAccount 詢問有效清單中的帳號；exclude 非空時不接受該帳號。
func (s *Session) askListedAccount(prompt, exclude string) (string, bool) {
	for {
		text, ok := s.ask(prompt)
		if !ok {
			return "", false
		}
		number := strings.TrimSpace(text)
		switch {
		case !s.listed(number):
			s.say(msgNotInList)
		case exclude != "" && number == exclude:
			s.say(msgSameAccount)
		default:
			return number, true
		}
	}
}

func (s *Session) listed(number string) bool {
	_, ok := s.accounts[number]
	return ok
}

func (s *Session) askValidName() (string, bool) {
	for {
		name, ok := s.ask(promptName)
		if !ok {
			return "", false
		}
		if validate.AccountName(name) {
			return name, true
		}
		s.say(msgInvalidName)
	}
}

// askAnyName 接受任何非空戶名（刪除帳戶用）。
func (s *Session) askAnyName() (string, bool) {
	for {
		text, ok := s.ask(promptName)
		if !ok {
			return "", false
		}
		if name := strings.TrimSpace(text); name != "" {
			return name, true
		}
		s.say(msgEmptyName)
	}
}

// askAmount 詢問金額（分），依目前角色檢查單筆上限，ATM 另檢查每日累計：
// SumMatching(kind, acct) + amount <= Daily。超過時重新詢問金額。
func (s *Session) askAmount(kind txlog.Kind, acct string) (int64, bool) {
	lim := limitsFor(s.state, kind)
	for {
		text, ok := s.ask(promptAmount)
		if !ok {
			return 0, false
		}
		cents, err := validate.Amount(text)
		if err != nil {
			s.say(msgParseAmount)
			continue
		}
		if cents > lim.PerTransaction {
			s.say(msgOverTransactionLimit(lim.PerTransaction))
			continue
		}
		if lim.Daily > 0 {
			if used := s.log.SumMatching(kind, acct); used+cents > lim.Daily {
				s.say(msgOverDailyLimit(kind.Code(), lim.Daily, used))
				continue
			}
		}
		return cents, true
	}
}
