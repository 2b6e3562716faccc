// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package jpcntx

// sjisOrderDecoder decodes character boundaries and hiragana orders for
// Shift-JIS. Hiragana live in the 0x82 lead row, trail bytes 0x9F-0xF1.
type sjisOrderDecoder struct{}

func (sjisOrderDecoder) DecodeOrder(b []byte) (size, order int) {
	c := b[0]
	size = 1
	if (c >= 0x81 && c <= 0x9F) || (c >= 0xE0 && c <= 0xFC) {
		size = 2
	}
	if c == 0x82 && len(b) > 1 && b[1] >= 0x9F && b[1] <= 0xF1 {
		return size, int(b[1]) - 0x9F
	}
	return size, -1
}

// eucjpOrderDecoder decodes character boundaries and hiragana orders for
// EUC-JP. 0x8E leads a two-byte half-width sequence, 0x8F a three-byte
// JIS X 0212 sequence; hiragana live in the 0xA4 lead row, trail bytes
// 0xA1-0xF3.
type eucjpOrderDecoder struct{}

func (eucjpOrderDecoder) DecodeOrder(b []byte) (size, order int) {
	c := b[0]
	switch {
	case c == 0x8E || (c >= 0xA1 && c <= 0xFE):
		size = 2
	case c == 0x8F:
		size = 3
	default:
		size = 1
	}
	if c == 0xA4 && len(b) > 1 && b[1] >= 0xA1 && b[1] <= 0xF3 {
		return size, int(b[1]) - 0xA1
	}
	return size, -1
}
