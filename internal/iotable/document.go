// Package iotable is the JSON boundary between the debugblocker CLI and
// already-tokenized input. Tokenization, index construction and the
// rest of file I/O stay out of the join core entirely; this package
// reads and writes the document shapes the core's Request and
// []sim.RecPair need, and nothing else. It uses goccy/go-json as an
// encoding/json drop-in.
package iotable

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/progracyd/debugblocker/internal/sim"
	"github.com/progracyd/debugblocker/internal/token"
)

// Document is the on-disk shape of a debugblocker run's input: two
// already-tokenized record tables, their field-id tables, token-sum
// vectors, the starting field list and the external blocker's
// candidate set.
type Document struct {
	LeftTokens     token.Table      `json:"left_tokens"`
	RightTokens    token.Table      `json:"right_tokens"`
	LeftFieldIDs   token.FieldTable `json:"left_field_ids"`
	RightFieldIDs  token.FieldTable `json:"right_field_ids"`
	LeftTokenSums  token.TokenSums  `json:"left_token_sums"`
	RightTokenSums token.TokenSums  `json:"right_token_sums"`
	Fields         []int            `json:"fields"`
	Candidates     []CandidatePair  `json:"candidates"`
}

// CandidatePair is one external-blocker pair, in the wire-friendly
// flat form; Document.CandidateSet expands it into a token.CandidateSet.
type CandidatePair struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// ReadDocument decodes a Document from r.
func ReadDocument(r io.Reader) (Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("iotable: decoding document: %w", err)
	}
	return doc, nil
}

// CandidateSet expands the document's flat candidate pair list into a
// token.CandidateSet for sim.Request.
func (d Document) CandidateSet() token.CandidateSet {
	set := make(token.CandidateSet)
	for _, p := range d.Candidates {
		set.Add(p.Left, p.Right)
	}
	return set
}

// recPairWire is the wire form of a sim.RecPair; exported field names
// differ from sim.RecPair's Go-idiomatic ones, so WriteRecPairs
// translates rather than encoding sim.RecPair directly.
type recPairWire struct {
	LeftRecord  int `json:"left_record"`
	RightRecord int `json:"right_record"`
	Rank        int `json:"rank"`
}

// WriteRecPairs encodes the orchestrator's fused recommendation list
// to w.
func WriteRecPairs(w io.Writer, pairs []sim.RecPair) error {
	wire := make([]recPairWire, len(pairs))
	for i, p := range pairs {
		wire[i] = recPairWire{LeftRecord: p.LRec, RightRecord: p.RRec, Rank: p.Rank}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wire); err != nil {
		return fmt.Errorf("iotable: encoding recommendations: %w", err)
	}
	return nil
}
