// Package format renders generated sequences as literals.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Style selects the literal syntax.
type Style int

const (
	Array Style = iota // [1,2,3]
	Go                 // []int64{1, 2, 3}
	Lines              // one term per line
	JSON               // JSON array
)

var styleNames = []string{
	Array: "array",
	Go:    "go",
	Lines: "lines",
	JSON:  "json",
}

func (s Style) String() string {
	if int(s) >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// Styles lists the accepted style names.
func Styles() []string {
	return append([]string(nil), styleNames...)
}

// ParseStyle maps a style name to a Style. The empty name is Array.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Array, nil
	}
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return Array, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(styleNames, ", "))
}

// Format renders terms in the given style.
func Format(terms []int64, style Style) string {
	switch style {
	case Go:
		return "[]int64{" + join(terms, ", ") + "}"
	case Lines:
		if len(terms) == 0 {
			return ""
		}
		return join(terms, "\n") + "\n"
	case JSON:
		if terms == nil {
			terms = []int64{}
		}
		b, err := json.Marshal(terms)
		if err != nil {
			// []int64 always marshals.
			panic(err)
		}
		return string(b)
	default:
		return "[" + join(terms, ",") + "]"
	}
}

func join(terms []int64, sep string) string {
	var sb strings.Builder
	for i, x := range terms {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(strconv.FormatInt(x, 10))
	}
	return sb.String()
}
