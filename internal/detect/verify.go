// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package detect

// A verifier tracks whether a stream is structurally possible in one
// encoding: every lead byte must be followed by trail bytes in the legal
// range for that encoding. Trail expectations carry across chunk boundaries.
// Once invalid, a verifier stays invalid until reset.
type verifier interface {
	feed(p []byte)
	ok() bool
	reset()
}

// sjisVerifier validates Shift-JIS byte structure: single bytes are ASCII or
// half-width katakana (0xA1-0xDF), leads 0x81-0x9F and 0xE0-0xFC take one
// trail byte in 0x40-0xFC excluding 0x7F.
type sjisVerifier struct {
	invalid bool
	trail   int
}

func (v *sjisVerifier) feed(p []byte) {
	if v.invalid {
		return
	}
	for _, c := range p {
		if v.trail > 0 {
			if c < 0x40 || c == 0x7F || c > 0xFC {
				v.invalid = true
				return
			}
			v.trail--
			continue
		}
		switch {
		case c < 0x80 || (c >= 0xA1 && c <= 0xDF):
		case (c >= 0x81 && c <= 0x9F) || (c >= 0xE0 && c <= 0xFC):
			v.trail = 1
		default:
			v.invalid = true
			return
		}
	}
}

func (v *sjisVerifier) ok() bool {
	return !v.invalid
}

func (v *sjisVerifier) reset() {
	v.invalid = false
	v.trail = 0
}

// eucjpVerifier validates EUC-JP byte structure: 0x8E takes one trail byte
// in 0xA1-0xDF, 0x8F takes two in 0xA1-0xFE, leads 0xA1-0xFE take one in
// 0xA1-0xFE, everything else must be ASCII.
type eucjpVerifier struct {
	invalid bool
	trail   int
	hi      byte // upper bound of the expected trail range
}

func (v *eucjpVerifier) feed(p []byte) {
	if v.invalid {
		return
	}
	for _, c := range p {
		if v.trail > 0 {
			if c < 0xA1 || c > v.hi {
				v.invalid = true
				return
			}
			v.trail--
			continue
		}
		switch {
		case c < 0x80:
		case c == 0x8E:
			v.trail, v.hi = 1, 0xDF
		case c == 0x8F:
			v.trail, v.hi = 2, 0xFE
		case c >= 0xA1 && c <= 0xFE:
			v.trail, v.hi = 1, 0xFE
		default:
			v.invalid = true
			return
		}
	}
}

func (v *eucjpVerifier) ok() bool {
	return !v.invalid
}

func (v *eucjpVerifier) reset() {
	v.invalid = false
	v.trail = 0
}
