package report

import (
	"iter"
	"strings"
)

// KeyValuePair is one "key=value" line of a report.
type KeyValuePair struct {
	Key   string
	Value string
}

// Pairs lazily splits text into key/value pairs, one per line. The key is
// everything before the first "=" and the value everything after it, with no
// trimming. Lines without "=" or with an empty key produce nothing.
//
// The returned sequence can be ranged over any number of times.
func Pairs(text string) iter.Seq[KeyValuePair] {
	return func(yield func(KeyValuePair) bool) {
		rest := text
		for len(rest) > 0 {
			var line string
			if i := strings.IndexByte(rest, '\n'); i >= 0 {
				line, rest = rest[:i], rest[i+1:]
			} else {
				line, rest = rest, ""
			}

			pair, ok := splitLine(line)
			if !ok {
				continue
			}
			if !yield(pair) {
				return
			}
		}
	}
}

func splitLine(line string) (KeyValuePair, bool) {
	key, value, found := strings.Cut(line, "=")
	if !found || key == "" {
		return KeyValuePair{}, false
	}
	return KeyValuePair{Key: key, Value: value}, true
}
