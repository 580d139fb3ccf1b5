package constants

const (
	DefaultListLimit = 20

	// Date Layout
	DateTimeFormat = "2006-01-02 15:04:05"
)

// StatusLabel renders the success flag of a transaction record.
func StatusLabel(success bool) string {
	if success {
		return "Success"
	}
	return "Failed"
}
