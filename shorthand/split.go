package shorthand

import (
	"fmt"
	"strings"
)

// KeyValue is a longhand property with its value.
type KeyValue struct {
	Key   string
	Value string
}

// Split splits up a compound shorthand value into its individual
// components, e.g.
//
//	Split("padding", "3px 4px")
//
// will return
//
//	"padding-top"    => "3px"
//	"padding-right"  => "4px"
//	"padding-bottom" => "3px"
//	"padding-left"   => "4px"
//
// Values are distributed the usual CSS way for one to four components.
func Split(key string, value string) ([]KeyValue, error) {
	fields := strings.Fields(value)
	switch key {
	case "margin":
		return distribute4("margin", "", fourDirs, fields)
	case "padding":
		return distribute4("padding", "", fourDirs, fields)
	case "border-color":
		return distribute4("border", "color", fourDirs, fields)
	case "border-width":
		return distribute4("border", "width", fourDirs, fields)
	case "border-style":
		return distribute4("border", "style", fourDirs, fields)
	case "border-radius":
		return distribute4("border", "radius", fourCorners, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CanSplit tells if Split knows how to split key.
func CanSplit(key string) bool {
	switch key {
	case "margin", "padding", "border-color", "border-width", "border-style", "border-radius":
		return true
	}
	return false
}

func distribute4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s, have %d", p(pre, suf, "*"), l)
	}
	// index of the field for top, right, bottom, left
	pick := [5][4]int{
		1: {0, 0, 0, 0},
		2: {0, 1, 0, 1},
		3: {0, 1, 2, 1},
		4: {0, 1, 2, 3},
	}[l]
	r := make([]KeyValue, 4)
	for i := range r {
		r[i] = KeyValue{p(pre, suf, dirs[i]), fields[pick[i]]}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
