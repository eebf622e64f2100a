package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the primer ASCII banner with the running version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Teal-to-blue gradient.
	s1 := termenv.String("                 _                      ").Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String("  _ __  _ __(_)_ __ ___   ___ _ __ ").Foreground(p.Color("#22d3ee"))
	s3 := termenv.String(" | '_ \\| '__| | '_ ` _ \\ / _ \\ '__|").Foreground(p.Color("#38bdf8"))
	s4 := termenv.String(" | |_) | |  | | | | | | |  __/ |   ").Foreground(p.Color("#60a5fa"))
	s5 := termenv.String(" | .__/|_|  |_|_| |_| |_|\\___|_|   ").Foreground(p.Color("#818cf8"))
	s6 := termenv.String(" |_|                                ").Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Printf("%s v%s\n", s6, version)
	fmt.Println()
}
