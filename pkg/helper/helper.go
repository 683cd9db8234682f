package helper

import (
	"fmt"
	"strings"
)

// method to convert from seconds to minutes:seconds.milliseconds
func SecondsToMinutes(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	minutes := int(seconds / 60)
	seconds = seconds - float64(minutes*60)
	milliseconds := int((seconds-float64(int(seconds)))*1000 + 0.5)
	if milliseconds == 1000 {
		milliseconds = 0
		seconds++
		if int(seconds) == 60 {
			seconds = 0
			minutes++
		}
	}
	return fmt.Sprintf("%02d:%02d.%03d", minutes, int(seconds), milliseconds)
}

// GetDriverCodeName builds a code for a driver the provider sent without an
// abbreviation: the first letter of the name and two letters of the surname,
// so "Max Verstappen" gives MVE. A single name uses its own next letters.
// Letters are counted in runes.
func GetDriverCodeName(fullName string) string {
	words := strings.Fields(fullName)
	if len(words) == 0 {
		return ""
	}
	first := []rune(words[0])

	var surname []rune
	switch {
	case len(words) > 1:
		surname = []rune(words[1])
	case len(first) > 2:
		surname = first[1:]
	default:
		surname = first
	}
	if len(surname) > 2 {
		surname = surname[:2]
	}

	code := append([]rune{first[0]}, surname...)
	return strings.ToUpper(string(code))
}
