// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package jpcntx estimates how likely a byte stream is Japanese text in a
// given legacy encoding by scoring co-occurrences of adjacent hiragana
// characters against a precomputed bigram frequency table. It is a port of
// the Japanese context analysis found in Mozilla's universal charset
// detector.
//
// The analysis is incremental: bytes arrive in arbitrarily sized chunks and
// memory use stays constant regardless of the total stream length. Each
// Analysis instance tracks a single encoding hypothesis; evaluating multiple
// hypotheses concurrently requires one instance per hypothesis.
package jpcntx

const (
	// numHiragana is the number of hiragana characters the frequency table
	// knows about; valid orders are 0 through numHiragana-1.
	numHiragana = 83

	// numCategories is the number of frequency categories in the table.
	numCategories = 6

	// maxRelations caps how many hiragana pairs are sampled. Past this point
	// the confidence has long converged and further input is ignored.
	maxRelations = 10000
)

// An orderDecoder reports the byte length of the character at the start of b
// and, when that character is hiragana, its order into the frequency table.
// A non-hiragana character decodes to order -1. Decoders are pure and never
// fail; they only look at the second byte when b actually contains it.
type orderDecoder interface {
	DecodeOrder(b []byte) (size, order int)
}

// Analysis accumulates hiragana bigram statistics for one encoding
// hypothesis. The zero value is not usable; construct with NewShiftJIS or
// NewEUCJP. Methods must not be called concurrently.
type Analysis struct {
	dec orderDecoder

	totalRel  int                // observed hiragana-hiragana pairs
	relSample [numCategories]int // pair counts per frequency category
	skipBytes int                // leading bytes of the next chunk to discard
	lastOrder int                // order of the previous character, or -1
	done      bool
	threshold int // minimum totalRel before Confidence reports a value
}

// NewShiftJIS returns an Analysis for the Shift-JIS encoding hypothesis.
func NewShiftJIS() *Analysis {
	return &Analysis{dec: sjisOrderDecoder{}, lastOrder: -1}
}

// NewEUCJP returns an Analysis for the EUC-JP encoding hypothesis.
func NewEUCJP() *Analysis {
	return &Analysis{dec: eucjpOrderDecoder{}, lastOrder: -1}
}

// SetDataThreshold sets the minimum number of observed pairs required before
// Confidence considers the sample meaningful. The default is 0, which still
// reports "unknown" for an empty sample because the comparison is strict.
func (a *Analysis) SetDataThreshold(n int) {
	a.threshold = n
}

// Feed consumes the next chunk of the byte stream. Chunks must arrive in
// stream order with no gaps or overlaps; an empty chunk is a no-op. Once the
// analysis is done, Feed returns immediately without inspecting any byte.
//
// A character split across a chunk boundary is skipped rather than
// reassembled: the tail bytes arriving in the next chunk are consumed as
// padding only, and the split character never pairs with its neighbors on
// either side. At most one character per boundary is lost, which does not
// move the statistics in any meaningful way.
func (a *Analysis) Feed(p []byte) {
	if a.done {
		return
	}

	i := a.skipBytes
	if i > len(p) {
		// The chunk is shorter than the pending skip; carry the rest forward.
		a.skipBytes = i - len(p)
		return
	}
	a.skipBytes = 0

	for i < len(p) {
		size, order := a.dec.DecodeOrder(p[i:])
		i += size
		if i > len(p) {
			a.skipBytes = i - len(p)
			a.lastOrder = -1
			break
		}
		if order != -1 && a.lastOrder != -1 {
			a.totalRel++
			if a.totalRel > maxRelations {
				a.done = true
				break
			}
			a.relSample[jp2CharContext[a.lastOrder][order]]++
		}
		a.lastOrder = order
	}
}

// Confidence returns the fraction of observed pairs whose frequency category
// is not "never co-occurs". The boolean is false while fewer pairs than the
// data threshold have been observed; callers must treat that as a distinct
// "don't know yet" state rather than zero confidence.
func (a *Analysis) Confidence() (float64, bool) {
	if a.totalRel <= a.threshold {
		return 0, false
	}
	return float64(a.totalRel-a.relSample[0]) / float64(a.totalRel), true
}

// Done reports whether the analysis has sampled enough pairs that further
// Feed calls have no effect. Confidence remains callable and stable.
func (a *Analysis) Done() bool {
	return a.done
}

// Reset restores the initial state so the instance can analyze a new stream.
// The data threshold is kept.
func (a *Analysis) Reset() {
	a.totalRel = 0
	a.relSample = [numCategories]int{}
	a.skipBytes = 0
	a.lastOrder = -1
	a.done = false
}
