// Package hts - Hierarchical prefix-cascade matching
package hts

import "tariff-cost/core/types"

// cascadeLengths orders prefix lengths most-specific first. A 10-digit
// exact classification beats a broader 4-digit heading.
var cascadeLengths = [...]int{10, 8, 6, 4}

// Match finds the best row for a normalized code. For each cascade length
// L the query is truncated to L digits (codes shorter than L are used
// whole, never padded) and compared for full equality against each row's
// normalized code, in table order. The first row at the longest length
// with any match wins. An empty query never matches, even against a row
// whose own normalized code is empty.
func Match(code string, t *types.TariffTable) (types.Row, bool) {
	return MatchFunc(code, t, nil)
}

// MatchFunc is Match with an acceptance check. When accept rejects the
// row found at a length, that length is treated as having no match and
// the cascade continues with the next shorter prefix. A nil accept
// accepts every row.
func MatchFunc(code string, t *types.TariffTable, accept func(types.Row) bool) (types.Row, bool) {
	if t == nil || code == "" {
		return types.Row{}, false
	}
	for _, length := range cascadeLengths {
		target := code
		if len(code) > length {
			target = code[:length]
		}
		for _, row := range t.Rows {
			if row.NormalizedCode != target {
				continue
			}
			if accept != nil && !accept(row) {
				// Only the first equal row counts at a length; a rejected
				// row sends the cascade to the next shorter prefix.
				break
			}
			return row, true
		}
	}
	return types.Row{}, false
}
