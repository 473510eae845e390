package dbg

import (
	"github.com/logrusorgru/aurora"
)

// Status of something being reported on a terminal.
type Status int

const (
	OK Status = iota
	Suspect
	Broken
)

// Colorize a name by status: green when fine, yellow when suspect, red when
// broken. With color disabled the text is returned unchanged.
func Colorize(text string, status Status, color bool) string {
	if !color {
		return text
	}
	switch status {
	case Suspect:
		return aurora.Yellow(text).String()
	case Broken:
		return aurora.Red(text).String()
	}
	return aurora.Green(text).String()
}

// Bold, for headings.
func Heading(text string, color bool) string {
	if !color {
		return text
	}
	return aurora.Bold(aurora.Cyan(text)).String()
}
