// internal/bank/errors.go
//
// 本檔集中定義帳本的「領域錯誤（domain errors）」。
// 除 ErrCorrupt 外皆屬業務規則違反：對帳引擎遇到時略過該筆並記錄診斷，不中止整批。
// ErrCorrupt 代表帳本檔結構錯誤，屬致命錯誤。

package bank

import "errors"

var (
	// ErrNotFound 代表帳戶不存在。
	ErrNotFound = errors.New("account not found")

	// ErrBadAmount 代表金額為負。
	ErrBadAmount = errors.New("amount must be >= 0")

	// ErrInsufficient 代表餘額不足，提款或轉帳失敗。
	ErrInsufficient = errors.New("insufficient balance")

	// ErrSameAccount 代表轉帳來源與目標帳戶相同。
	ErrSameAccount = errors.New("from and to are same")

	// ErrAlreadyExists 代表建立的帳號已存在。
	ErrAlreadyExists = errors.New("account already exists")

	// ErrReserved 代表嘗試以佔位帳號 0000000 建立帳戶。
	ErrReserved = errors.New("account number is reserved")

	// ErrNameMismatch 代表刪除時提供的戶名與帳本不符。
	ErrNameMismatch = errors.New("account name does not match")

	// ErrNonZeroBalance 代表刪除的帳戶餘額不為零。
	ErrNonZeroBalance = errors.New("account balance is not zero")

	// ErrOverflow 代表入帳後餘額會超出 int64 可表示的範圍。
	ErrOverflow = errors.New("balance would overflow")

	// ErrCorrupt 代表帳本檔或有效帳號檔某行無法解析。
	ErrCorrupt = errors.New("corrupt ledger file")
)
