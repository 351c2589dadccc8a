package rewrite_test

import (
	"math/rand"
	"reflect"
	"strings"
)

// cobolAlphabet keeps generated documents free of tabs and line separators
// while still covering digits, spaces and indicator characters.
const cobolAlphabet = "0123456789      ABCDEFGHIJKLMNOPQRSTUVWXYZ.-*'\"()"

func randomDocument(r *rand.Rand) string {
	lines := make([]string, r.Intn(12))
	for i := range lines {
		var sb strings.Builder
		for n := r.Intn(40); n > 0; n-- {
			sb.WriteByte(cobolAlphabet[r.Intn(len(cobolAlphabet))])
		}
		lines[i] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// documentAndIncrement generates arguments for func(string, uint8) properties.
func documentAndIncrement(args []reflect.Value, r *rand.Rand) {
	args[0] = reflect.ValueOf(randomDocument(r))
	args[1] = reflect.ValueOf(uint8(r.Intn(256)))
}

// documentIncrementAndFlag generates arguments for func(string, uint8, bool)
// properties.
func documentIncrementAndFlag(args []reflect.Value, r *rand.Rand) {
	documentAndIncrement(args[:2], r)
	args[2] = reflect.ValueOf(r.Intn(2) == 0)
}
