package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS parses a small CSS subset: selectors .class or #id (comma lists allowed) and blocks of
// "key: value;". Other selectors and @rules are skipped. Later rules override earlier for the same selector.
func ParseCSS(content string) (*Stylesheet, error) {
	sheet := &Stylesheet{}
	p := css.NewParser(parse.NewInputString(content), false)
	var current []int // indices into sheet.Rules for the open ruleset
	depth := 0        // nesting inside @rules we ignore
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := p.Err(); err != nil && err != io.EOF {
				return sheet, fmt.Errorf("ui: css: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			depth++
		case css.EndAtRuleGrammar:
			if depth > 0 {
				depth--
			}
		case css.BeginRulesetGrammar:
			current = current[:0]
			if depth > 0 {
				continue
			}
			for _, sel := range splitSelectors(joinValues(data, p.Values())) {
				sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: map[string]string{}})
				current = append(current, len(sheet.Rules)-1)
			}
		case css.DeclarationGrammar:
			key := strings.ToLower(strings.TrimSpace(string(data)))
			val := strings.TrimSpace(joinValues(nil, p.Values()))
			for _, i := range current {
				sheet.Rules[i].Props[key] = val
			}
		case css.EndRulesetGrammar:
			current = current[:0]
		}
	}
}

func joinValues(data []byte, vals []css.Token) string {
	var b strings.Builder
	b.Write(data)
	for _, v := range vals {
		b.Write(v.Data)
	}
	return b.String()
}

// splitSelectors keeps the plain .class and #id entries of a selector list.
func splitSelectors(list string) []string {
	var out []string
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if len(s) < 2 || (s[0] != '.' && s[0] != '#') {
			continue
		}
		if strings.ContainsAny(s[1:], " .#:>[+~") {
			continue
		}
		out = append(out, s)
	}
	return out
}
