package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()   // Command lines and expansions
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // Paths and sources
)

// Alias Specific Colors
var (
	AliasNameColor = color.New(color.FgYellow).SprintFunc()
	AliasCmdColor  = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// SetEnabled forces colored output on or off, e.g. for NO_COLOR or tests.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}
