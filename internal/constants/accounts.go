package constants

const (
	MaxNameLen = 100

	// Amount bounds: at most MaxAmountScale decimal places and
	// MaxAmountIntegerDigits digits before the point.
	MaxAmountScale         = 8
	MaxAmountIntegerDigits = 18
)

// SeedAccount is one of the sample accounts loaded by `ledger seed`.
type SeedAccount struct {
	Name    string
	Balance string
}

var SampleAccounts = []SeedAccount{
	{Name: "Account1", Balance: "100"},
	{Name: "Account2", Balance: "52"},
	{Name: "Account3", Balance: "203"},
	{Name: "Account4", Balance: "604"},
	{Name: "Account5", Balance: "99"},
	{Name: "Account6", Balance: "204"},
}
