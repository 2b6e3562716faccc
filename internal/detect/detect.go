// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package detect arbitrates between Japanese encoding hypotheses over a byte
// stream. Each hypothesis runs an independent context analysis plus a
// structural verifier; the hypothesis with the highest confidence among the
// structurally valid ones wins.
package detect

import (
	"errors"
	"io"
	"unicode/utf8"

	log "unknwon.dev/clog/v2"

	"github.com/mojidet/mojidet/internal/conf"
	"github.com/mojidet/mojidet/internal/jpcntx"
)

// Charset names are reported in their IANA form.
const (
	CharsetUTF8     = "UTF-8"
	CharsetShiftJIS = "Shift_JIS"
	CharsetEUCJP    = "EUC-JP"
)

// ErrNotDetected is returned when no hypothesis gathered enough evidence.
var ErrNotDetected = errors.New("charset not detected")

// Result is the outcome of an arbitration.
type Result struct {
	// IANA name of the detected charset.
	Charset string `json:"charset"`
	// Confidence of the Result in the range (0, 1]. The bigger, the more
	// confident.
	Confidence float64 `json:"confidence"`
}

type prober struct {
	charset string
	cntx    *jpcntx.Analysis
	valid   verifier
}

// Detector evaluates all encoding hypotheses over a stream of chunks. It is
// not safe for concurrent use; every stream needs its own instance.
type Detector struct {
	probers []*prober
}

// NewDetector creates a Detector with one prober per supported legacy
// encoding. The data threshold of every analyzer comes from the [analysis]
// configuration section.
func NewDetector() *Detector {
	sjis := jpcntx.NewShiftJIS()
	sjis.SetDataThreshold(conf.Analysis.DataThreshold)
	eucjp := jpcntx.NewEUCJP()
	eucjp.SetDataThreshold(conf.Analysis.DataThreshold)

	return &Detector{
		probers: []*prober{
			{charset: CharsetShiftJIS, cntx: sjis, valid: &sjisVerifier{}},
			{charset: CharsetEUCJP, cntx: eucjp, valid: &eucjpVerifier{}},
		},
	}
}

// Feed consumes the next chunk of the stream. Probers whose hypothesis has
// already been ruled out structurally are skipped.
func (d *Detector) Feed(p []byte) {
	for _, pr := range d.probers {
		if !pr.valid.ok() {
			continue
		}
		pr.valid.feed(p)
		pr.cntx.Feed(p)
	}
}

// Finished reports whether feeding more data can still change the outcome.
func (d *Detector) Finished() bool {
	for _, pr := range d.probers {
		if pr.valid.ok() && !pr.cntx.Done() {
			return false
		}
	}
	return true
}

// Best returns the valid hypothesis with the highest confidence, or
// ErrNotDetected when every hypothesis is invalid or lacks data.
func (d *Detector) Best() (*Result, error) {
	var best *Result
	for _, pr := range d.probers {
		if !pr.valid.ok() {
			continue
		}
		confidence, ok := pr.cntx.Confidence()
		if !ok {
			continue
		}
		if best == nil || confidence > best.Confidence {
			best = &Result{Charset: pr.charset, Confidence: confidence}
		}
	}
	if best == nil {
		return nil, ErrNotDetected
	}
	return best, nil
}

// Reset returns the Detector to its initial state for reuse on a new stream.
func (d *Detector) Reset() {
	for _, pr := range d.probers {
		pr.cntx.Reset()
		pr.valid.reset()
	}
}

// DetectReader streams r through a fresh Detector in chunks of the
// configured size, stopping early once no prober can change its verdict.
func DetectReader(r io.Reader) (*Result, error) {
	size := conf.Analysis.ChunkSize
	if size <= 0 {
		size = 4096
	}

	d := NewDetector()
	buf := make([]byte, size)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			d.Feed(buf[:n])
		}
		if err == io.EOF || d.Finished() {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return d.Best()
}

// Detect runs arbitration over content held fully in memory, with a fast
// path for content that is already valid UTF-8.
func Detect(content []byte) (*Result, error) {
	if utf8.Valid(content) {
		log.Trace("Detected encoding: UTF-8 (fast)")
		return &Result{Charset: CharsetUTF8, Confidence: 1}, nil
	}

	d := NewDetector()
	d.Feed(content)
	return d.Best()
}

// DetectEncoding returns best guess of encoding of given content.
func DetectEncoding(content []byte) (string, error) {
	result, err := Detect(content)
	if err != nil {
		if len(conf.Detection.FallbackCharset) > 0 {
			log.Trace("Using fallback charset: %s", conf.Detection.FallbackCharset)
			return conf.Detection.FallbackCharset, nil
		}
		return "", err
	}

	log.Trace("Detected encoding: %s", result.Charset)
	return result.Charset, nil
}
