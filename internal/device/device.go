// Package device detects terminal capabilities that affect how discoveries
// are presented.
package device

import (
	"os"
	"strings"
)

// Capabilities describes what the surrounding terminal can or should do.
type Capabilities struct {
	// Color is false when the NO_COLOR convention asks for plain output.
	Color bool
	// ReducedMotion suppresses celebration animations.
	ReducedMotion bool
	// Unicode is false on terminals that only render ASCII reliably.
	Unicode bool
}

// Detect inspects the environment. getenv may be nil, in which case
// os.Getenv is used.
func Detect(getenv func(string) string) Capabilities {
	if getenv == nil {
		getenv = os.Getenv
	}
	return Capabilities{
		Color:         getenv("NO_COLOR") == "",
		ReducedMotion: truthy(getenv("EGGHUNT_REDUCED_MOTION")),
		Unicode:       supportsUnicode(getenv),
	}
}

func truthy(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// supportsUnicode checks the locale variables the way most TUI tools do:
// a UTF-8 charmap anywhere in LC_ALL, LC_CTYPE, or LANG.
func supportsUnicode(getenv func(string) string) bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.ToLower(getenv(key))
		if v == "" {
			continue
		}
		return strings.Contains(v, "utf-8") || strings.Contains(v, "utf8")
	}
	// No locale info at all; modern terminals default to UTF-8.
	return true
}
