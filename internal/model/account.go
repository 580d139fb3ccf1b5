package model

import "github.com/shopspring/decimal"

type Account struct {
	ID               int64
	Name             string
	AvailableBalance decimal.Decimal
}
