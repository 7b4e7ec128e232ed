package env

import (
	"os"
	"strconv"
	"strings"

	"github.com/dsawizard/dsawizard/internal/core"
)

// Prefix is prepended to every variable name read through this package.
const Prefix = "DSAWIZARD_"

// String returns the value of Prefix+name, or "" when unset.
func String(name string) string {
	return os.Getenv(Prefix + name)
}

// Int returns the value of Prefix+name when it parses as a positive integer.
func Int(name string) (int, bool) {
	v := String(name)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func Bool(name string) bool {
	v := String(name)
	return v == "1" || strings.EqualFold(v, "true")
}

func DetectMode() core.Mode {
	if Bool("DEV") {
		return core.ModeDev
	}
	return core.ModeProd
}
