// internal/session/limits.go

package session

import "quinterac/internal/txlog"

// Limits 為某角色、某交易種類的金額上限（單位：分，皆為含等號）。
// Daily 為 0 代表不檢查每日累計。
type Limits struct {
	PerTransaction int64
	Daily          int64
}

const agentPerTransaction = 99999999

// limitsFor 回傳角色與交易種類對應的上限。
// 每日累計以 session 日誌中同種類、同關鍵帳號的紀錄計算。
func limitsFor(s State, kind txlog.Kind) Limits {
	if s == AgentActive {
		return Limits{PerTransaction: agentPerTransaction}
	}
	switch kind {
	case txlog.Deposit:
		return Limits{PerTransaction: 200000, Daily: 500000}
	case txlog.Withdraw:
		return Limits{PerTransaction: 100000, Daily: 500000}
	case txlog.Transfer:
		return Limits{PerTransaction: 1000000, Daily: 1000000}
	case txlog.CreateAccount, txlog.DeleteAccount, txlog.EndOfSession:
		return Limits{}
	}
	return Limits{}
}
