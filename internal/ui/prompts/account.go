package prompts

// PromptAccountName prompts for account name with validation
func PromptAccountName(validator func(string) error) (string, error) {
	return PromptInput("Account Name:", "", validator)
}

// PromptInitialBalance prompts for initial balance with validation
func PromptInitialBalance(validator func(string) error) (string, error) {
	return PromptInput("Initial Balance (press Enter for 0):", "0", validator)
}
