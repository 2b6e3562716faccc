// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package detect

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"

	"github.com/mojidet/mojidet/internal/conf"
)

// Mostly-hiragana sample, the sweet spot of the context analysis.
const sampleText = "きょうはとてもいいてんきですね。あしたはあめがふるでしょうか。"

func encodeString(t *testing.T, e encoding.Encoding, s string) []byte {
	b, err := e.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestDetector_Best(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		charset string
	}{
		{"shift-jis", encodeString(t, japanese.ShiftJIS, sampleText), CharsetShiftJIS},
		{"euc-jp", encodeString(t, japanese.EUCJP, sampleText), CharsetEUCJP},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := NewDetector()
			d.Feed(test.input)

			result, err := d.Best()
			require.NoError(t, err)
			assert.Equal(t, test.charset, result.Charset)
			assert.Greater(t, result.Confidence, 0.9)
		})
	}
}

func TestDetector_StructuralElimination(t *testing.T) {
	d := NewDetector()
	// Shift-JIS hiragana lead bytes are impossible in EUC-JP.
	d.Feed(encodeString(t, japanese.ShiftJIS, sampleText))

	for _, pr := range d.probers {
		if pr.charset == CharsetEUCJP {
			assert.False(t, pr.valid.ok())
		} else {
			assert.True(t, pr.valid.ok())
		}
	}
}

func TestDetector_NotDetected(t *testing.T) {
	d := NewDetector()
	d.Feed([]byte("plain ascii text has no hiragana at all"))

	_, err := d.Best()
	assert.Equal(t, ErrNotDetected, err)
}

func TestDetector_Reset(t *testing.T) {
	d := NewDetector()
	d.Feed(encodeString(t, japanese.ShiftJIS, sampleText))
	d.Reset()

	d.Feed(encodeString(t, japanese.EUCJP, sampleText))
	result, err := d.Best()
	require.NoError(t, err)
	assert.Equal(t, CharsetEUCJP, result.Charset)
}

func TestDetectReader(t *testing.T) {
	conf.Analysis.ChunkSize = 3
	defer func() { conf.Analysis.ChunkSize = 0 }()

	input := encodeString(t, japanese.EUCJP, sampleText)

	streamed, err := DetectReader(bytes.NewReader(input))
	require.NoError(t, err)

	d := NewDetector()
	d.Feed(input)
	whole, err := d.Best()
	require.NoError(t, err)

	assert.Equal(t, whole.Charset, streamed.Charset)
	assert.Equal(t, whole.Confidence, streamed.Confidence)
}

func TestDetectEncoding(t *testing.T) {
	charset, err := DetectEncoding([]byte("こんにちは、世界"))
	require.NoError(t, err)
	assert.Equal(t, CharsetUTF8, charset)

	charset, err = DetectEncoding(encodeString(t, japanese.ShiftJIS, sampleText))
	require.NoError(t, err)
	assert.Equal(t, CharsetShiftJIS, charset)

	// Not valid UTF-8 and structurally impossible in both legacy encodings.
	junk := []byte{0x82, 0x33, 0x82, 0x33}
	_, err = DetectEncoding(junk)
	assert.Equal(t, ErrNotDetected, err)

	conf.Detection.FallbackCharset = CharsetShiftJIS
	defer func() { conf.Detection.FallbackCharset = "" }()
	charset, err = DetectEncoding(junk)
	require.NoError(t, err)
	assert.Equal(t, CharsetShiftJIS, charset)
}

func TestSJISVerifier(t *testing.T) {
	tests := []struct {
		name   string
		chunks [][]byte
		ok     bool
	}{
		{"ascii", [][]byte{[]byte("hello")}, true},
		{"half-width katakana", [][]byte{{0xB1, 0xB2}}, true},
		{"double byte", [][]byte{{0x82, 0xA0, 0x93, 0xFA}}, true},
		{"bare 0x80", [][]byte{{0x80}}, false},
		{"bare 0xfd", [][]byte{{0xFD}}, false},
		{"trail 0x7f", [][]byte{{0x82, 0x7F}}, false},
		{"trail carried across chunks", [][]byte{{0x82}, {0xA0}}, true},
		{"bad trail carried across chunks", [][]byte{{0x82}, {0x20}}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := &sjisVerifier{}
			for _, chunk := range test.chunks {
				v.feed(chunk)
			}
			assert.Equal(t, test.ok, v.ok())
		})
	}
}

func TestEUCJPVerifier(t *testing.T) {
	tests := []struct {
		name   string
		chunks [][]byte
		ok     bool
	}{
		{"ascii", [][]byte{[]byte("hello")}, true},
		{"double byte", [][]byte{{0xA4, 0xA2, 0xC6, 0xFC}}, true},
		{"half-width", [][]byte{{0x8E, 0xB1}}, true},
		{"half-width trail out of range", [][]byte{{0x8E, 0xE0}}, false},
		{"three byte split across chunks", [][]byte{{0x8F, 0xA1}, {0xA1}}, true},
		{"shift-jis lead", [][]byte{{0x82, 0xA0}}, false},
		{"trail below range", [][]byte{{0xA4, 0x41}}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := &eucjpVerifier{}
			for _, chunk := range test.chunks {
				v.feed(chunk)
			}
			assert.Equal(t, test.ok, v.ok())
		})
	}
}
