package utils

import (
	"time"

	"github.com/hance08/ledger/internal/constants"
)

// FormatTimestamp renders unix seconds in local time; 0 means unset.
func FormatTimestamp(ts int64) string {
	if ts == 0 {
		return "-"
	}
	return time.Unix(ts, 0).Format(constants.DateTimeFormat)
}
