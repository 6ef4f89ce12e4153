package database

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (c Category) RecordID() string {
	return c.ID
}

type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func (t Tag) RecordID() string {
	return t.ID
}

type WalletType string

const (
	WalletTypeCash       = WalletType("cash")
	WalletTypeBank       = WalletType("bank")
	WalletTypeCreditCard = WalletType("credit_card")
	WalletTypeEWallet    = WalletType("e_wallet")
	WalletTypeSavings    = WalletType("savings")
)

type Wallet struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Color   string          `json:"color"`
	Balance decimal.Decimal `json:"balance"`
	Type    WalletType      `json:"type"`
}

func (w Wallet) RecordID() string {
	return w.ID
}

type BudgetPeriod string

const (
	BudgetPeriodWeekly  = BudgetPeriod("weekly")
	BudgetPeriodMonthly = BudgetPeriod("monthly")
	BudgetPeriodYearly  = BudgetPeriod("yearly")
)

type Budget struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CategoryID string          `json:"categoryId"`
	Amount     decimal.Decimal `json:"amount"`
	Period     BudgetPeriod    `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	Color      string          `json:"color"`
}

func (b Budget) RecordID() string {
	return b.ID
}

// Transfer moves money between two wallets. Wallet names are denormalized for display.
type Transfer struct {
	ID             string          `json:"id"`
	FromWalletID   string          `json:"fromWalletId"`
	ToWalletID     string          `json:"toWalletId"`
	FromWalletName string          `json:"fromWalletName"`
	ToWalletName   string          `json:"toWalletName"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Notes          string          `json:"notes"`
	PhotoURL       string          `json:"photoUrl,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (t Transfer) RecordID() string {
	return t.ID
}
