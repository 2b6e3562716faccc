// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jpcntx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
)

func encodeString(t *testing.T, e encoding.Encoding, s string) []byte {
	b, err := e.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestDecodeOrder_ShiftJIS(t *testing.T) {
	dec := sjisOrderDecoder{}
	tests := []struct {
		name  string
		input []byte
		size  int
		order int
	}{
		{"first hiragana", []byte{0x82, 0x9F}, 2, 0},
		{"last hiragana", []byte{0x82, 0xF1}, 2, 82},
		{"past hiragana row", []byte{0x82, 0xF2}, 2, -1},
		{"double byte non-hiragana", []byte{0x81, 0x40}, 2, -1},
		{"high lead", []byte{0xE0, 0x40}, 2, -1},
		{"ascii", []byte{0x41}, 1, -1},
		{"half-width katakana", []byte{0xB1}, 1, -1},
		{"lead byte at end of buffer", []byte{0x82}, 2, -1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			size, order := dec.DecodeOrder(test.input)
			assert.Equal(t, test.size, size)
			assert.Equal(t, test.order, order)
		})
	}
}

func TestDecodeOrder_EUCJP(t *testing.T) {
	dec := eucjpOrderDecoder{}
	tests := []struct {
		name  string
		input []byte
		size  int
		order int
	}{
		{"first hiragana", []byte{0xA4, 0xA1}, 2, 0},
		{"last hiragana", []byte{0xA4, 0xF3}, 2, 82},
		{"past hiragana row", []byte{0xA4, 0xF4}, 2, -1},
		{"double byte non-hiragana", []byte{0xB0, 0xA1}, 2, -1},
		{"half-width lead", []byte{0x8E, 0xB1}, 2, -1},
		{"three byte lead", []byte{0x8F, 0xA1, 0xA1}, 3, -1},
		{"ascii", []byte{0x41}, 1, -1},
		{"lead byte at end of buffer", []byte{0xA4}, 2, -1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			size, order := dec.DecodeOrder(test.input)
			assert.Equal(t, test.size, size)
			assert.Equal(t, test.order, order)
		})
	}
}

func TestFrequencyTable(t *testing.T) {
	// Spot values against the original data asset.
	assert.EqualValues(t, 2, jp2CharContext[0][3])
	assert.EqualValues(t, 4, jp2CharContext[1][3])
	assert.EqualValues(t, 4, jp2CharContext[82][1])

	// Rows and columns are not interchangeable.
	assert.EqualValues(t, 0, jp2CharContext[3][0])

	for i := range jp2CharContext {
		for j := range jp2CharContext[i] {
			assert.LessOrEqual(t, jp2CharContext[i][j], uint8(numCategories-1))
		}
	}
}

func TestFeed_SingleRelation(t *testing.T) {
	tests := []struct {
		name     string
		analysis *Analysis
		input    []byte
	}{
		{"shift-jis", NewShiftJIS(), encodeString(t, japanese.ShiftJIS, "あい")},
		{"euc-jp", NewEUCJP(), encodeString(t, japanese.EUCJP, "あい")},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := test.analysis
			a.Feed(test.input)

			// "あ" has order 1 and "い" order 3; their pair sits in frequency
			// category 4.
			assert.Equal(t, 1, a.totalRel)
			assert.Equal(t, 1, a.relSample[4])

			conf, ok := a.Confidence()
			require.True(t, ok)
			assert.Equal(t, 1.0, conf)
		})
	}
}

func TestFeed_NonHiraganaBreaksPair(t *testing.T) {
	a := NewShiftJIS()
	// Katakana between two hiragana characters; no consecutive pair remains.
	a.Feed(encodeString(t, japanese.ShiftJIS, "あアい"))

	assert.Equal(t, 0, a.totalRel)
	_, ok := a.Confidence()
	assert.False(t, ok)
}

func TestFeed_EmptyChunk(t *testing.T) {
	a := NewEUCJP()
	a.Feed(nil)
	a.Feed([]byte{})

	assert.Equal(t, 0, a.totalRel)
	assert.Equal(t, -1, a.lastOrder)
}

func TestFeed_ChunkingInvariance(t *testing.T) {
	stream := encodeString(t, japanese.ShiftJIS, "わたしはまいにちたくさんのほんをよみます")
	whole := NewShiftJIS()
	whole.Feed(stream)
	wantConf, wantOK := whole.Confidence()
	require.True(t, wantOK)

	// Every chunking that cuts on character boundaries must reproduce the
	// exact same histogram and confidence.
	for _, size := range []int{2, 4, 6, 10} {
		a := NewShiftJIS()
		for i := 0; i < len(stream); i += size {
			end := i + size
			if end > len(stream) {
				end = len(stream)
			}
			a.Feed(stream[i:end])
		}
		assert.Equal(t, whole.totalRel, a.totalRel, "chunk size %d", size)
		assert.Equal(t, whole.relSample, a.relSample, "chunk size %d", size)
		conf, ok := a.Confidence()
		require.True(t, ok)
		assert.Equal(t, wantConf, conf, "chunk size %d", size)
	}
}

func TestFeed_SplitCharacterNeverPairs(t *testing.T) {
	a := NewShiftJIS()
	hiraA := encodeString(t, japanese.ShiftJIS, "あ")
	hiraI := encodeString(t, japanese.ShiftJIS, "い")
	hiraU := encodeString(t, japanese.ShiftJIS, "う")
	hiraE := encodeString(t, japanese.ShiftJIS, "え")

	// First chunk ends right after the lead byte of "い"; the trail byte
	// arrives in the second chunk. The split character must pair with
	// neither "あ" before it nor "う" after it.
	a.Feed(append(append([]byte{}, hiraA...), hiraI[0]))
	assert.Equal(t, 1, a.skipBytes)
	assert.Equal(t, -1, a.lastOrder)

	a.Feed(append([]byte{hiraI[1]}, hiraU...))
	assert.Equal(t, 0, a.totalRel)

	// The next full character pairs with "う" as usual.
	a.Feed(hiraE)
	assert.Equal(t, 1, a.totalRel)
}

func TestFeed_SkipShorterThanChunkCarriesRemainder(t *testing.T) {
	a := NewEUCJP()
	// 0x8F opens a three byte sequence; only its lead arrives here.
	a.Feed(append(encodeString(t, japanese.EUCJP, "かき"), 0x8F))
	require.Equal(t, 2, a.skipBytes)
	require.Equal(t, -1, a.lastOrder)
	relBefore := a.totalRel

	// One byte chunk is consumed entirely by the pending skip.
	a.Feed([]byte{0xA1})
	assert.Equal(t, 1, a.skipBytes)

	a.Feed([]byte{0xA1})
	assert.Equal(t, 0, a.skipBytes)

	// The stream continues with two full characters forming one new pair.
	a.Feed(encodeString(t, japanese.EUCJP, "くけ"))
	assert.Equal(t, relBefore+1, a.totalRel)
}

func TestFeed_InteriorSplitPointIrrelevant(t *testing.T) {
	prefix := encodeString(t, japanese.EUCJP, "かきく")
	suffix := encodeString(t, japanese.EUCJP, "けこさ")
	triple := []byte{0x8F, 0xA1, 0xA1}

	run := func(cut int) *Analysis {
		a := NewEUCJP()
		stream := append(append(append([]byte{}, prefix...), triple...), suffix...)
		split := len(prefix) + cut
		a.Feed(stream[:split])
		a.Feed(stream[split:])
		return a
	}

	one := run(1)
	two := run(2)
	assert.Equal(t, one.totalRel, two.totalRel)
	assert.Equal(t, one.relSample, two.relSample)
}

func TestFeed_HistogramSumsToTotal(t *testing.T) {
	a := NewShiftJIS()
	a.Feed(encodeString(t, japanese.ShiftJIS, "きょうはとてもいいてんきですねあしたもはれるといいな"))

	sum := 0
	for _, n := range a.relSample {
		sum += n
	}
	assert.Equal(t, a.totalRel, sum)
	assert.NotZero(t, a.totalRel)
}

func TestReset(t *testing.T) {
	stream := encodeString(t, japanese.EUCJP, "ひらがなのれんぞくをかぞえます")

	a := NewEUCJP()
	a.SetDataThreshold(2)
	a.Feed(stream)
	firstConf, firstOK := a.Confidence()
	firstSample := a.relSample

	a.Reset()
	assert.Equal(t, 0, a.totalRel)
	assert.Equal(t, -1, a.lastOrder)
	_, ok := a.Confidence()
	assert.False(t, ok)
	assert.Equal(t, 2, a.threshold, "data threshold survives a reset")

	a.Feed(stream)
	conf, ok := a.Confidence()
	assert.Equal(t, firstOK, ok)
	assert.Equal(t, firstConf, conf)
	assert.Equal(t, firstSample, a.relSample)
}

func TestSetDataThreshold(t *testing.T) {
	a := NewShiftJIS()
	a.SetDataThreshold(4)

	// Four pairs is not strictly above the threshold yet.
	a.Feed(encodeString(t, japanese.ShiftJIS, "あいうえお"))
	require.Equal(t, 4, a.totalRel)
	_, ok := a.Confidence()
	assert.False(t, ok)

	a.Feed(encodeString(t, japanese.ShiftJIS, "かき"))
	_, ok = a.Confidence()
	assert.True(t, ok)
}

func TestDone(t *testing.T) {
	// Enough hiragana to push the relation count over the cap.
	stream := bytes.Repeat(encodeString(t, japanese.ShiftJIS, "あいうえおかきくけこ"), maxRelations/10+2)

	a := NewShiftJIS()
	a.Feed(stream)
	require.True(t, a.Done())
	frozen, ok := a.Confidence()
	require.True(t, ok)

	a.Feed(stream)
	conf, ok := a.Confidence()
	require.True(t, ok)
	assert.Equal(t, frozen, conf)
	assert.True(t, a.Done())

	a.Reset()
	assert.False(t, a.Done())
	assert.Equal(t, 0, a.totalRel)
}
