// Package token defines the data shapes the debugblocker core operates
// on: per-field-tokenized record tables, field-id tables, token-sum
// vectors and the external blocker's candidate set. Tokenization
// itself, and how these tables are produced, is out of scope here —
// this package only names the shapes.
package token

// Table is an ordered sequence of records, each an ordered sequence of
// non-negative integer tokens. Token order within a record carries
// prefix-filter information; token values are interchangeable ids.
type Table [][]int

// FieldTable has the same shape as a Table: FieldTable[i][j] is the
// field id that produced Table[i][j].
type FieldTable [][]int

// TokenSums maps a field id to the total number of tokens that field
// contributed across an entire Table.
type TokenSums []int

// CandidateSet maps a left-record index to the set of right-record
// indices an external blocker already paired. Pairs in this set are
// excluded from recommendation output.
type CandidateSet map[int]map[int]struct{}

// Has reports whether (l, r) is already a candidate pair.
func (c CandidateSet) Has(l, r int) bool {
	rs, ok := c[l]
	if !ok {
		return false
	}
	_, ok = rs[r]
	return ok
}

// Add records (l, r) as a candidate pair, creating the inner set if
// needed. Primarily useful for building fixtures in tests.
func (c CandidateSet) Add(l, r int) {
	rs, ok := c[l]
	if !ok {
		rs = make(map[int]struct{})
		c[l] = rs
	}
	rs[r] = struct{}{}
}
