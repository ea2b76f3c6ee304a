package selector

import (
	"strings"

	"github.com/npillmayer/respstyle/memo"
)

const (
	// StickyClass marks elements which are currently stuck.
	StickyClass = "et_pb_sticky"
	// ThemeBuilderPrefix is the root scope of theme-builder layouts.
	ThemeBuilderPrefix = ".et-db #et-boc .et-l "
	// HoverPlaceholder may be used in selector templates to mark where the
	// hover pseudo-class goes.
	HoverPlaceholder = "{{:hover}}"

	listSeparator = ", "
	stickyMarker  = "." + StickyClass
	hoverMarker   = ":hover"
)

// Split splits a selector list into its sub-selectors.
func Split(selector string) []string {
	return strings.Split(selector, listSeparator)
}

// Join joins sub-selectors into a selector list.
func Join(parts []string) string {
	return strings.Join(parts, listSeparator)
}

// Hover rewrites every sub-selector of selector to match the hover state.
// Sub-selectors already containing ":hover" are left as they are; if a
// sub-selector has another pseudo-class or pseudo-element, ":hover" is
// inserted in front of the first one; otherwise it is appended.
func Hover(selector string) string {
	parts := Split(selector)
	for i, part := range parts {
		parts[i] = hoverPart(part)
	}
	return Join(parts)
}

func hoverPart(part string) string {
	if strings.Contains(part, hoverMarker) {
		return part
	}
	if i := strings.IndexByte(part, ':'); i >= 0 {
		return part[:i] + hoverMarker + ":" + part[i+1:]
	}
	return part + hoverMarker
}

// StickyOptions parameterize sticky rewriting.
type StickyOptions struct {
	// OrderClass is the unique class of the element, e.g. ".et_pb_text_0".
	OrderClass string
	// InsideSticky is true if the element is nested in a sticky module.
	InsideSticky bool
	// Prefix is the theme-builder root scope. Empty means ThemeBuilderPrefix.
	Prefix string
}

func (o StickyOptions) prefix() string {
	if o.Prefix == "" {
		return ThemeBuilderPrefix
	}
	return o.Prefix
}

type stickyKey struct {
	selector string
	opts     StickyOptions
}

var stickyCache = memo.New[stickyKey, string]("sticky-selector")

// Sticky rewrites every sub-selector of selector to match the sticky state.
// Results are memoized process-wide.
func Sticky(selector string, opts StickyOptions) string {
	return stickyCache.Do(stickyKey{selector, opts}, func() string {
		return sticky(selector, opts)
	})
}

func sticky(selector string, opts StickyOptions) string {
	parts := Split(selector)
	for i, part := range parts {
		parts[i] = stickyPart(part, opts)
	}
	return Join(parts)
}

func stickyPart(part string, opts StickyOptions) string {
	if opts.InsideSticky {
		prefix := opts.prefix()
		if i := strings.Index(part, prefix); i >= 0 {
			at := i + len(prefix)
			return part[:at] + stickyMarker + " " + part[at:]
		}
		return stickyMarker + " " + part
	}
	if part == "" {
		return stickyMarker
	}
	if strings.Contains(part, stickyMarker) {
		return part
	}
	if opts.OrderClass == "" {
		head, tail, found := strings.Cut(part, " ")
		if !found {
			return part + stickyMarker
		}
		return head + stickyMarker + " " + tail
	}
	if i := LocateToken(part, opts.OrderClass); i >= 0 {
		at := i + len(opts.OrderClass)
		return part[:at] + stickyMarker + part[at:]
	}
	tracer().Debugf("order class %q not found in %q, appending sticky class", opts.OrderClass, part)
	return part + stickyMarker
}

// LocateToken returns the position of the first occurrence of token in s
// which is bounded on both sides, or -1. Boundaries are the start and end of
// s, whitespace, and the characters ':', '.' and '>'. A token starting with
// '.', '#' or ':' carries its own left boundary, so ".b" is found in ".a.b".
func LocateToken(s, token string) int {
	if token == "" {
		return -1
	}
	selfBounded := strings.IndexByte(".#:", token[0]) >= 0
	for from := 0; from+len(token) <= len(s); {
		i := strings.Index(s[from:], token)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(token)
		if (i == 0 || selfBounded || isBoundary(s[i-1])) && (end == len(s) || isBoundary(s[end])) {
			return i
		}
		from = i + 1
	}
	return -1
}

func isBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', ':', '.', '>':
		return true
	}
	return false
}

// ExpandHoverPlaceholder replaces the hover placeholder in s by ":hover".
func ExpandHoverPlaceholder(s string) string {
	if !strings.Contains(s, HoverPlaceholder) {
		return s
	}
	return strings.ReplaceAll(s, HoverPlaceholder, hoverMarker)
}
