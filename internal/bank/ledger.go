// internal/bank/ledger.go

// Package bank 的 Ledger 為主帳本聚合：帳號 → (餘額, 戶名)。
// 不變量：餘額恆 >= 0、帳號唯一、佔位帳號 0000000 永不為 key。
// 每個操作對記憶體中的 map 都是原子的：前置條件不成立時完全不改變狀態。
// 帳本只由單一批次對帳程序循序使用，本身不加鎖。
// 金額以 int64 的分儲存，避免浮點誤差。
package bank

import (
	"math"
	"sort"
)

// Ledger 為主帳本。
type Ledger struct {
	accts map[string]*Account
}

// NewLedger 建立空白帳本。
func NewLedger() *Ledger {
	return &Ledger{accts: make(map[string]*Account)}
}

// Get 依帳號取得帳戶的值拷貝；不存在回傳 ErrNotFound。
func (l *Ledger) Get(number string) (Account, error) {
	a, ok := l.accts[number]
	if !ok {
		return Account{}, ErrNotFound
	}
	return *a, nil
}

// List 依帳號由大到小回傳所有帳戶的拷貝。
func (l *Ledger) List() []Account {
	out := make([]Account, 0, len(l.accts))
	for _, a := range l.accts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return out
}

func (l *Ledger) Len() int { return len(l.accts) }

// Total 回傳全部餘額總和。
func (l *Ledger) Total() int64 {
	var sum int64
	for _, a := range l.accts {
		sum += a.Balance
	}
	return sum
}

// Credit 入帳：帳戶存在則餘額增加；不存在回傳 ErrNotFound，
// 餘額會溢位回傳 ErrOverflow，兩者皆不做任何變更。
func (l *Ledger) Credit(number string, cents int64) error {
	if cents < 0 {
		return ErrBadAmount
	}
	a, ok := l.accts[number]
	if !ok {
		return ErrNotFound
	}
	if overflows(a.Balance, cents) {
		return ErrOverflow
	}
	a.Balance += cents
	return nil
}

// Debit 扣款：需帳戶存在且餘額 >= cents；否則回傳 ErrNotFound / ErrInsufficient，不做變更。
func (l *Ledger) Debit(number string, cents int64) error {
	if cents < 0 {
		return ErrBadAmount
	}
	a, ok := l.accts[number]
	if !ok {
		return ErrNotFound
	}
	if a.Balance < cents {
		return ErrInsufficient
	}
	a.Balance -= cents
	return nil
}

// Transfer 轉帳：先檢核兩端存在與來源餘額，再同時扣款與入帳。
// 任一檢核失敗皆不改變任何帳戶。
func (l *Ledger) Transfer(from, to string, cents int64) error {
	if cents < 0 {
		return ErrBadAmount
	}
	if from == to {
		return ErrSameAccount
	}
	src, ok1 := l.accts[from]
	dst, ok2 := l.accts[to]
	if !ok1 || !ok2 {
		return ErrNotFound
	}
	if src.Balance < cents {
		return ErrInsufficient
	}
	if overflows(dst.Balance, cents) {
		return ErrOverflow
	}
	src.Balance -= cents
	dst.Balance += cents
	return nil
}

// overflows 回報 balance+cents 是否超過 math.MaxInt64（兩者皆 >= 0）。
func overflows(balance, cents int64) bool {
	return cents > math.MaxInt64-balance
}

// Create 以餘額 0 建立帳戶；帳號已存在回傳 ErrAlreadyExists。
func (l *Ledger) Create(number, name string) error {
	if number == NoAccount {
		return ErrReserved
	}
	if _, ok := l.accts[number]; ok {
		return ErrAlreadyExists
	}
	l.accts[number] = &Account{Number: number, Name: name}
	return nil
}

// Delete 刪除帳戶：需存在、戶名相符且餘額為 0。
// 檢查順序為 ErrNotFound → ErrNameMismatch → ErrNonZeroBalance。
func (l *Ledger) Delete(number, name string) error {
	a, ok := l.accts[number]
	if !ok {
		return ErrNotFound
	}
	if a.Name != name {
		return ErrNameMismatch
	}
	if a.Balance != 0 {
		return ErrNonZeroBalance
	}
	delete(l.accts, number)
	return nil
}

// ValidAccounts 回傳有效帳號清單（由大到小），最後附上結束標記 0000000。
func (l *Ledger) ValidAccounts() []string {
	out := make([]string, 0, len(l.accts)+1)
	for _, a := range l.List() {
		out = append(out, a.Number)
	}
	return append(out, NoAccount)
}
