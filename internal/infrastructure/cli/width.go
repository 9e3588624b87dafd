package cli

import (
	"os"

	"golang.org/x/term"
)

const fallbackMinWidth = 40

// terminalWidth returns the detected terminal width, never less than
// minWidth. Redirected output (no terminal) gets the minimum.
func terminalWidth(minWidth int) int {
	if minWidth <= 0 {
		minWidth = fallbackMinWidth
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w < minWidth {
		return minWidth
	}
	return w
}
