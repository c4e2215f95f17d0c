// internal/models/transaction.go
package models

// Transaction is a synthetic sale generated per session from the current
// product list. It is mock report data, not a persisted ledger fact.
type Transaction struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"product_id"`
	ProductName string            `json:"product_name"`
	VendorID    string            `json:"vendor_id"`
	Amount      float64           `json:"amount"`
	Date        string            `json:"date"` // dd/mm/yyyy
	Status      TransactionStatus `json:"status"`
}
