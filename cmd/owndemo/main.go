// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command owndemo runs the demonstration catalogue and prints each
// routine's transcript to standard output.
//
// The routine sequence and its output are fixed; the command takes no
// flags. Banners are emphasized with ANSI escapes when standard output
// is an ANSI-capable terminal, and kept plain when output is
// redirected.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"code.hybscloud.com/own"
)

// ANSI escape codes for banner emphasis.
const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// termCaps holds what the command needs to know about standard output.
type termCaps struct {
	interactive bool // stdout is a terminal
	ansi        bool // escape codes are safe to emit
	width       int  // columns
}

// detectTerminal probes standard output.
// Redirected output gets an 80-column plain-text rendering.
func detectTerminal() termCaps {
	caps := termCaps{width: 80}
	caps.interactive = term.IsTerminal(int(os.Stdout.Fd()))
	if !caps.interactive {
		return caps
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		caps.width = w
	}
	caps.ansi = ansiCapable(os.Getenv("TERM"))
	return caps
}

// ansiCapable reports whether the terminal type is known to understand
// ANSI escape codes.
func ansiCapable(termType string) bool {
	if termType == "" || termType == "dumb" {
		return false
	}
	lower := strings.ToLower(termType)
	ansiTerms := []string{
		"xterm", "vt100", "vt220", "ansi", "linux",
		"screen", "tmux", "rxvt", "konsole", "alacritty", "kitty", "iterm",
	}
	for _, known := range ansiTerms {
		if strings.Contains(lower, known) {
			return true
		}
	}
	return os.Getenv("COLORTERM") != ""
}

// banner renders one routine heading, clamped to the terminal width.
func banner(caps termCaps, name string) string {
	line := fmt.Sprintf("== %s ==", name)
	if len(line) > caps.width {
		line = line[:caps.width]
	}
	if caps.ansi {
		return ansiBold + line + ansiReset
	}
	return line
}

func main() {
	caps := detectTerminal()
	runner := own.NewRunner(own.Routines()...)

	w := bufio.NewWriter(os.Stdout)
	for i, t := range runner.Transcripts() {
		name, lines := t.Unpack()
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, banner(caps, name))
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "owndemo:", err)
		os.Exit(1)
	}
}
