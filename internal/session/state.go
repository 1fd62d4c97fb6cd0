// internal/session/state.go

package session

import "strings"

// State 為 session 狀態；初始為 Idle，登入後依角色進入 AtmActive 或 AgentActive。
type State int

const (
	Idle State = iota
	AtmActive
	AgentActive
)

// Role 回傳狀態對應的角色名稱。
func (s State) Role() string {
	switch s {
	case AtmActive:
		return "atm"
	case AgentActive:
		return "agent"
	case Idle:
		return "idle"
	}
	return "unknown"
}

func (s State) String() string { return s.Role() }

// parseRole 解析登入角色；"machine" 為 atm 的別名。
func parseRole(text string) (State, bool) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "atm", "machine":
		return AtmActive, true
	case "agent":
		return AgentActive, true
	}
	return Idle, false
}

// Command 為前台可接受的指令集合。
type Command int

const (
	CmdLogin Command = iota + 1
	CmdLogout
	CmdCreateAccount
	CmdDeleteAccount
	CmdDeposit
	CmdWithdraw
	CmdTransfer
	CmdHelp
	CmdQuit
)

var commandNames = map[Command]string{
	CmdLogin:         "login",
	CmdLogout:        "logout",
	CmdCreateAccount: "createacct",
	CmdDeleteAccount: "deleteacct",
	CmdDeposit:       "deposit",
	CmdWithdraw:      "withdraw",
	CmdTransfer:      "transfer",
	CmdHelp:          "help",
	CmdQuit:          "quit",
}

func (c Command) String() string {
	if n, ok := commandNames[c]; ok {
		return n
	}
	return "unknown"
}

// ParseCommand 以不分大小寫、去除前後空白的方式解析指令；"exit" 等同 quit。
func ParseCommand(text string) (Command, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "exit" {
		return CmdQuit, true
	}
	for c, n := range commandNames {
		if n == t {
			return c, true
		}
	}
	return 0, false
}
