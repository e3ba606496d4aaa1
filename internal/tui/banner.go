package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for the chat prompt.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Warm bakery palette, amber through rose.
	s1 := termenv.String(` ____        _         _____     _ _        `).Foreground(p.Color("#fbbf24"))
	s2 := termenv.String(`| __ )  __ _| | _____ |_   _|_ _| | | _____ `).Foreground(p.Color("#f59e0b"))
	s3 := termenv.String("|  _ \\ / _` | |/ / _ \\  | |/ _` | | |/ / __|").Foreground(p.Color("#f97316"))
	s4 := termenv.String(`| |_) | (_| |   <  __/  | | (_| | |   <\__ \`).Foreground(p.Color("#fb7185"))
	s5 := termenv.String(`|____/ \__,_|_|\_\___|  |_|\__,_|_|_|\_\___/`).Foreground(p.Color("#f43f5e"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
