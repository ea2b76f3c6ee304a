package cssom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/respstyle/statement"
)

// StyleSheet is an interface to abstract away a stylesheet implementation.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, flattened
}

// Rule is the type stylesheets consist of.
//
// See interface StyleSheet.
type Rule interface {
	Media() string           // enclosing at-rule, e.g. "@media print", or empty
	Selector() string        // the prelude / selectors of the rule
	Properties() []string    // property keys, e.g. "margin-top"
	Value(string) string     // property value for key, e.g. "15px"
	IsImportant(string) bool // is property key marked as important?
}

// Key identifies the ruleset of a rule, in the same way statement.Group
// identifies merged statements.
func Key(r Rule) string {
	return r.Media() + " {" + r.Selector() + "}"
}

// Digest renders every declaration of sheet on a line of its own, prefixed
// by the rule key. Digests of equivalent stylesheets are equal.
func Digest(sheet StyleSheet) []string {
	var lines []string
	for _, r := range sheet.Rules() {
		for _, p := range r.Properties() {
			imp := ""
			if r.IsImportant(p) {
				imp = " !important"
			}
			lines = append(lines, fmt.Sprintf("%s %s: %s%s", Key(r), p, r.Value(p), imp))
		}
	}
	return lines
}

// Mismatch describes a statement without a matching parsed rule.
type Mismatch struct {
	Statement statement.Statement
	Reason    string
}

func (m Mismatch) Error() string {
	return fmt.Sprintf("cssom: statement %q: %s", m.Statement.String(), m.Reason)
}

// Check compares compiled statements against the stylesheet they have been
// parsed into. Every statement must re-appear as exactly one rule, in the
// same order, with the same at-rule and selector.
func Check(stmts []statement.Statement, sheet StyleSheet) []Mismatch {
	var mm []Mismatch
	rules := sheet.Rules()
	for i, s := range stmts {
		if i >= len(rules) {
			mm = append(mm, Mismatch{s, "no rule parsed"})
			continue
		}
		r := rules[i]
		if norm(r.Media()) != norm(s.AtRules) {
			mm = append(mm, Mismatch{s, fmt.Sprintf("at-rule parsed as %q", r.Media())})
		}
		if norm(r.Selector()) != norm(s.Selector) {
			mm = append(mm, Mismatch{s, fmt.Sprintf("selector parsed as %q", r.Selector())})
		}
		if strings.TrimSpace(s.Declaration) != "" && len(r.Properties()) == 0 {
			mm = append(mm, Mismatch{s, "no declarations parsed"})
		}
	}
	if len(rules) > len(stmts) {
		tracer().Infof("stylesheet has %d surplus rules", len(rules)-len(stmts))
	}
	return mm
}

func norm(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
