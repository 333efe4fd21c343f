package models

// TransactionType marks a ledger entry as money in or money out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Transaction is a single ledger entry. The core does no bookkeeping math
// over these; they are plain records.
type Transaction struct {
	ID          string          `bson:"id" json:"id"`
	Date        string          `bson:"date" json:"date"` // "YYYY-MM-DD"
	Description string          `bson:"description" json:"description"`
	Amount      float64         `bson:"amount" json:"amount"`
	Type        TransactionType `bson:"type" json:"type"`
}
