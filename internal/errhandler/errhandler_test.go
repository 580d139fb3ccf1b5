package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestIsAbort(t *testing.T) {
	assert.True(t, IsAbort(huh.ErrUserAborted))
	assert.True(t, IsAbort(fmt.Errorf("pick source: %w", huh.ErrUserAborted)))
	assert.False(t, IsAbort(errors.New("interrupted by something else")))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Account not found", Capitalize("account not found"))
	assert.Equal(t, "Érable", Capitalize("érable"))
}
