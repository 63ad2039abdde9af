package cognidb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// QuoteIdent returns the identifier delimited with backticks, escaping any
// embedded delimiter, backslash, or control character. The result is always
// safe to interpolate into a statement.
func QuoteIdent(s string) string {
	return quote(s, '`')
}

// QuoteValue renders a Go value as a statement literal. Strings are quoted
// and escaped, numbers render as decimal text, booleans as TRUE/FALSE, and
// nil as NULL. Any other value renders as its canonical JSON text, which the
// query language accepts for structured parameters. Escaping is total: every
// input has a safe output and no error is ever returned.
func QuoteValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case string:
		return quote(x, '\'')
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case json.Number:
		return x.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			// Unmarshalable values (channels, cycles) degrade to their
			// quoted string rendering so the function stays total.
			return quote(fmt.Sprintf("%v", v), '\'')
		}
		return string(b)
	}
}

func quote(s string, r rune) string {
	var b bytes.Buffer
	b.WriteRune(r)
	for _, c := range s {
		switch c {
		case '\t':
			b.WriteString("\\t")
		case '\n':
			b.WriteString("\\n")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		default:
			if c == r {
				b.WriteRune('\\')
				b.WriteRune(c)
				break
			}

			if c < 0x20 {
				b.WriteString(fmt.Sprintf("\\x%02x", c))
				break
			}

			b.WriteRune(c)
		}
	}
	b.WriteRune(r)
	return b.String()
}
