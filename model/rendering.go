package model

import (
	"fmt"
	"os"
	"os/exec"
)

const clearCmd = "clear"

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the board to the terminal, one line per grid row
func (r *TerminalRenderer) Display(b *Board) {
	for _, line := range b.Render() {
		fmt.Println(line)
	}
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
