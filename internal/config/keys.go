package config

import (
	"strings"
	"unicode/utf8"
)

// NormalizeKey canonicalizes a configured key so that "Ctrl+R" binds like
// "ctrl+r" and "Up" like "up". Single printable runes keep their case.
func NormalizeKey(key string) string {
	i := strings.LastIndex(key, "+")
	if i <= 0 || i == len(key)-1 {
		return lowerName(key)
	}

	mods := strings.ToLower(key[:i])
	base := key[i+1:]
	if strings.Contains(mods, "ctrl") {
		base = strings.ToLower(base)
	}
	return mods + "+" + lowerName(base)
}

func lowerName(key string) string {
	if utf8.RuneCountInString(key) > 1 {
		return strings.ToLower(key)
	}
	return key
}
