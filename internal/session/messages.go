// internal/session/messages.go
//
// 前台終端機的提示與訊息文字集中於此。

package session

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	promptCommand = "Command: "
	promptRole    = "Select session type (atm or agent): "
	promptAccount = "Account Number: "
	promptFrom    = "From Account Number: "
	promptTo      = "To Account Number: "
	promptName    = "Account Name: "
	promptAmount  = "Amount (cents): "
)

const (
	msgWelcome             = "Welcome to Quinterac banking, type login to begin"
	msgAlreadyLoggedIn     = "Error: already logged in"
	msgNotLoggedIn         = "Error: not logged in"
	msgLoggedOut           = "Successfully logged out"
	msgCancelled           = "Cancelled"
	msgUnknownCommand      = "Error: unrecognized command, type help for a list of commands"
	msgInvalidNumber       = "Error: invalid account number, must be 7 digits, not beginning with a 0"
	msgInvalidName         = "Error: invalid account name, must be 3 to 30 letters, digits or spaces, not beginning or ending with a space"
	msgEmptyName           = "Error: account name is required"
	msgAccountExists       = "Error: account number already exists"
	msgNotInList           = "Error: account number is not a valid account"
	msgSameAccount         = "Error: cannot transfer to the same account"
	msgParseAmount         = "Error: amount must be a whole number of cents"
	msgAccountsUnavailable = "Error: valid accounts list could not be loaded"
	msgFlushFailed         = "Error: transaction summary could not be written, still logged in"
	msgCreated             = "Account creation recorded"
	msgDeleted             = "Account deletion recorded"
	msgRecorded            = "Successful transaction"

	helpText = "Commands: login, logout, createacct, deleteacct, deposit, withdraw, transfer, help, quit"
)

func msgLoggedIn(s State) string {
	return fmt.Sprintf("Successfully logged in as %q", s.Role())
}

func msgUnknownRole(text string) string {
	return fmt.Sprintf("Error: unrecognized session type %q, login with either atm or agent", text)
}

func msgRoleRequired(cmd Command) string {
	return fmt.Sprintf("Error: agent session required for %s command", cmd)
}

func msgSignInRequired(cmd Command) string {
	return fmt.Sprintf("Error: must be logged in to use %s command", cmd)
}

func msgOverTransactionLimit(limit int64) string {
	return fmt.Sprintf("Error: amount must be at most %s per transaction", dollars(limit))
}

func msgOverDailyLimit(kind string, limit, used int64) string {
	return fmt.Sprintf("Error: over limit, %s total for this account may not exceed %s per day (%s used)",
		kind, dollars(limit), dollars(used))
}

// dollars 將分轉為 "$1234.56" 形式。
func dollars(cents int64) string {
	return "$" + decimal.New(cents, -2).StringFixed(2)
}
