// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"

	"github.com/mojidet/mojidet/internal/conf"
	"github.com/mojidet/mojidet/internal/detect"
)

var Detect = cli.Command{
	Name:  "detect",
	Usage: "Detect Japanese encoding of files",
	Description: `Detect reads the given files (or standard input when no file is given)
and reports the most likely character encoding of each, based on hiragana
bigram statistics. Use --convert to print the content transcoded to UTF-8
instead of the detection report.`,
	Action: runDetect,
	Flags: []cli.Flag{
		stringFlag("config, c", "", "Custom configuration file path"),
		boolFlag("json", "Print the report in JSON format"),
		boolFlag("convert", "Print the input converted to UTF-8"),
	},
}

type detectReport struct {
	File       string  `json:"file"`
	Charset    string  `json:"charset"`
	Confidence float64 `json:"confidence"`
}

func runDetect(c *cli.Context) error {
	err := conf.Init(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "init configuration")
	}
	conf.InitLogging()

	args := c.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	reports := make([]detectReport, 0, len(args))
	for _, name := range args {
		content, err := readInput(name)
		if err != nil {
			return err
		}

		result, err := detect.Detect(content)
		if err != nil {
			if len(conf.Detection.FallbackCharset) == 0 {
				return errors.Wrapf(err, "detect %q", name)
			}
			result = &detect.Result{Charset: conf.Detection.FallbackCharset}
		}

		if c.Bool("convert") {
			converted, err := toUTF8(result.Charset, content)
			if err != nil {
				return errors.Wrapf(err, "convert %q", name)
			}
			_, _ = os.Stdout.Write(converted)
			continue
		}

		reports = append(reports, detectReport{
			File:       name,
			Charset:    result.Charset,
			Confidence: result.Confidence,
		})
	}

	if c.Bool("convert") {
		return nil
	}

	if c.Bool("json") {
		enc := jsoniter.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, r := range reports {
		fmt.Printf("%s: %s (confidence %.2f)\n", r.File, r.Charset, r.Confidence)
	}
	return nil
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, errors.Wrap(err, "read standard input")
		}
		return content, nil
	}

	content, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "read %q", name)
	}
	return content, nil
}

func toUTF8(charset string, content []byte) ([]byte, error) {
	var e encoding.Encoding
	switch charset {
	case detect.CharsetShiftJIS:
		e = japanese.ShiftJIS
	case detect.CharsetEUCJP:
		e = japanese.EUCJP
	case detect.CharsetUTF8:
		return content, nil
	default:
		return nil, errors.Errorf("unsupported charset %q", charset)
	}
	return e.NewDecoder().Bytes(content)
}
