package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// terminalConfirmer asks on stderr and reads one line from stdin. It
// declines on anything but an explicit yes: a non-interactive stdin, a read
// error, or any other answer all keep the data.
func terminalConfirmer(prompt string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}

	fmt.Fprint(os.Stderr, prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return affirmative(line)
}

// affirmative reports whether the answer is an explicit yes.
func affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
