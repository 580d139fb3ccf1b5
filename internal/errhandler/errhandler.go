package errhandler

import (
	"errors"
	"os"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// HandleError prints err for the terminal and exits. An aborted prompt is
// not a failure.
func HandleError(err error) {
	if IsAbort(err) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Capitalize(err.Error()))
	os.Exit(1)
}

func IsAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted) || errors.Is(err, huh.ErrTimeout)
}

func Capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
