// internal/session/session.go

// Package session 實作前台終端機的狀態機：控制登入登出、各角色可用的指令與金額上限，
// 並在登出時把 session 日誌交給外部寫出。
//
// Session 不讀寫檔案：有效帳號清單由 Config.LoadAccounts 提供（登入時載入一次，
// session 期間不重新讀取），摘要內容交由 Config.Flush 寫出。
// 任一提示輸入 "q" 只取消進行中的操作，不影響 session 本身。
package session

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"

	"quinterac/internal/txlog"
)

const cancelToken = "q"

// Config 注入 session 需要的外部協作者。
type Config struct {
	Input  Input
	Output io.Writer

	// LoadAccounts 回傳目前有效的帳號（不含結束標記）。
	LoadAccounts func() ([]string, error)

	// Flush 寫出登出時的摘要內容；回傳錯誤時 session 保持登入且日誌保留。
	Flush func(sessionID, summary string) error

	Logger *log.Logger

	// NewID 產生 session id，預設為 uuid。
	NewID func() string
}

// Session 為單一前台終端機。
type Session struct {
	in           Input
	out          io.Writer
	loadAccounts func() ([]string, error)
	flush        func(string, string) error
	logger       *log.Logger
	newID        func() string

	state    State
	id       string
	accounts map[string]struct{}
	log      txlog.Log
}

// New 依設定建立 Idle 狀態的 session；未提供的協作者以無作用的預設值替代。
func New(cfg Config) *Session {
	s := &Session{
		in:           cfg.Input,
		out:          cfg.Output,
		loadAccounts: cfg.LoadAccounts,
		flush:        cfg.Flush,
		logger:       cfg.Logger,
		newID:        cfg.NewID,
	}
	if s.in == nil {
		s.in = NewSliceInput(nil)
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.loadAccounts == nil {
		s.loadAccounts = func() ([]string, error) { return nil, nil }
	}
	if s.flush == nil {
		s.flush = func(string, string) error { return nil }
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

func (s *Session) State() State { return s.state }

// ID 回傳目前登入的 session id；Idle 時為空字串。
func (s *Session) ID() string { return s.id }

// Records 回傳尚未寫出的交易紀錄。
func (s *Session) Records() []txlog.Record { return s.log.Records() }

// Run 輸出歡迎訊息後逐一讀取指令，直到輸入耗盡或收到 quit。
// 未登出即結束時，尚未寫出的紀錄會被捨棄。
func (s *Session) Run() {
	s.say(msgWelcome)
	for {
		fmt.Fprint(s.out, promptCommand)
		line, ok := s.in.Next()
		if !ok || !s.Handle(line) {
			break
		}
	}
	if s.state != Idle && s.log.Len() > 0 {
		s.logger.Printf("session %s: ended without logout, %d record(s) discarded", s.id, s.log.Len())
	}
}

// Handle 執行一個指令（多步驟指令會再從 Input 讀取後續輸入）。
// 回傳 false 代表收到 quit。
func (s *Session) Handle(line string) bool {
	cmd, ok := ParseCommand(line)
	if !ok {
		s.say(msgUnknownCommand)
		return true
	}
	switch cmd {
	case CmdQuit:
		return false
	case CmdLogin:
		s.login()
	case CmdLogout:
		s.logout()
	case CmdHelp:
		if s.state == Idle {
			s.say(msgSignInRequired(cmd))
			return true
		}
		s.say(helpText)
	case CmdCreateAccount:
		if s.state != AgentActive {
			s.say(msgRoleRequired(cmd))
			return true
		}
		s.createAccount()
	case CmdDeleteAccount:
		if s.state != AgentActive {
			s.say(msgRoleRequired(cmd))
			return true
		}
		s.deleteAccount()
	case CmdDeposit, CmdWithdraw, CmdTransfer:
		if s.state == Idle {
			s.say(msgSignInRequired(cmd))
			return true
		}
		s.moneyCommand(cmd)
	}
	return true
}

func (s *Session) login() {
	if s.state != Idle {
		s.say(msgAlreadyLoggedIn)
		return
	}
	for {
		text, ok := s.ask(promptRole)
		if !ok {
			return
		}
		state, ok := parseRole(text)
		if !ok {
			s.say(msgUnknownRole(text))
			continue
		}
		accts, err := s.loadAccounts()
		if err != nil {
			s.logger.Printf("login: load valid accounts: %v", err)
			s.say(msgAccountsUnavailable)
			return
		}
		s.accounts = make(map[string]struct{}, len(accts))
		for _, a := range accts {
			if a != txlog.NoAccount {
				s.accounts[a] = struct{}{}
			}
		}
		s.state = state
		s.id = s.newID()
		s.logger.Printf("session %s: logged in as %s (%d valid accounts)", s.id, state.Role(), len(s.accounts))
		s.say(msgLoggedIn(state))
		return
	}
}

func (s *Session) logout() {
	if s.state == Idle {
		s.say(msgNotLoggedIn)
		return
	}
	summary := s.log.Serialize()
	if err := s.flush(s.id, summary); err != nil {
		s.logger.Printf("session %s: flush: %v", s.id, err)
		s.say(msgFlushFailed)
		return
	}
	s.logger.Printf("session %s: logged out, %d record(s) written", s.id, s.log.Len())
	s.log.Clear()
	s.state = Idle
	s.id = ""
	s.accounts = nil
	s.say(msgLoggedOut)
}

func (s *Session) createAccount() {
	number, ok := s.askNewAccountNumber()
	if !ok {
		return
	}
	name, ok := s.askValidName()
	if !ok {
		return
	}
	s.log.Append(txlog.NewCreateAccount(number, name))
	s.say(msgCreated)
}

// deleteAccount 只確認帳號在有效清單中；戶名比對延後到對帳階段。
func (s *Session) deleteAccount() {
	number, ok := s.askListedAccount(promptAccount, "")
	if !ok {
		return
	}
	name, ok := s.askAnyName()
	if !ok {
		return
	}
	s.log.Append(txlog.NewDeleteAccount(number, name))
	s.say(msgDeleted)
}

// moneyCommand 處理 deposit / withdraw / transfer 三個共用流程的指令。
func (s *Session) moneyCommand(cmd Command) {
	var rec txlog.Record
	switch cmd {
	case CmdDeposit:
		to, ok := s.askListedAccount(promptAccount, "")
		if !ok {
			return
		}
		cents, ok := s.askAmount(txlog.Deposit, to)
		if !ok {
			return
		}
		rec = txlog.NewDeposit(to, cents)
	case CmdWithdraw:
		from, ok := s.askListedAccount(promptAccount, "")
		if !ok {
			return
		}
		cents, ok := s.askAmount(txlog.Withdraw, from)
		if !ok {
			return
		}
		rec = txlog.NewWithdraw(from, cents)
	case CmdTransfer:
		from, ok := s.askListedAccount(promptFrom, "")
		if !ok {
			return
		}
		to, ok := s.askListedAccount(promptTo, from)
		if !ok {
			return
		}
		cents, ok := s.askAmount(txlog.Transfer, from)
		if !ok {
			return
		}
		rec = txlog.NewTransfer(from, to, cents)
	default:
		return
	}
	s.log.Append(rec)
	s.say(msgRecorded)
}

func (s *Session) say(msg string) {
	fmt.Fprintln(s.out, msg)
}

// ask 輸出提示並讀取一個輸入；輸入 "q" 或來源耗盡時回傳 false。
// 取消判斷先於任何格式解析；回傳原始文字，是否去除空白由呼叫端決定。
func (s *Session) ask(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	text, ok := s.in.Next()
	if !ok {
		return "", false
	}
	if strings.TrimSpace(text) == cancelToken {
		s.say(msgCancelled)
		return "", false
	}
	return text, true
}
