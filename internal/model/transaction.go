package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindPurchase Kind = "purchase"
	KindSale     Kind = "sale"
)

// Valid reports whether k is one of the two ledger kinds.
func (k Kind) Valid() bool {
	return k == KindPurchase || k == KindSale
}

func (k Kind) Value() (driver.Value, error) {
	return string(k), nil
}

func (k *Kind) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*k = Kind(v)
	case []byte:
		*k = Kind(v)
	default:
		return fmt.Errorf("cannot scan %T into Kind", value)
	}
	return nil
}

// Transaction is one purchase or sale of a product. Transactions are never updated in place.
// ProductID is not enforced as a foreign key: deleting a product leaves its history behind.
type Transaction struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	ProductID  uint            `gorm:"not null;index" json:"productId"`
	Kind       Kind            `gorm:"type:varchar(10);not null;check:chk_transactions_kind,kind IN ('purchase','sale')" json:"kind"`
	WeightKg   decimal.Decimal `gorm:"type:numeric(12,3);not null;check:chk_transactions_weight,weight_kg > 0" json:"weightKg"`
	PricePerKg decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_transactions_price,price_per_kg >= 0" json:"pricePerKg"`
	TotalValue decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"totalValue"`
	Date       Date            `gorm:"not null;index" json:"date"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// ComputeTotal sets TotalValue to WeightKg * PricePerKg rounded to cents.
func (t *Transaction) ComputeTotal() {
	t.TotalValue = t.WeightKg.Mul(t.PricePerKg).Round(2)
}

// TransactionView is a transaction joined with the current name of its product.
// ProductName is nil once the product has been deleted.
type TransactionView struct {
	Transaction
	ProductName *string `json:"productName"`
}
