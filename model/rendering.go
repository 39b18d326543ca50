package model

import (
	"fmt"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering. It consumes
// snapshots only and never touches engine state.
type TerminalRenderer struct{}

// Display renders a grid snapshot to the terminal
func (r *TerminalRenderer) Display(snapshot [][]bool) {
	for _, row := range snapshot {
		for _, alive := range row {
			if alive {
				fmt.Print(gridPosBlock)
			} else {
				fmt.Print(gridPosEmpty)
			}
		}
		fmt.Println()
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
