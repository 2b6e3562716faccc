// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

// ℹ️ README: This file contains static values that should only be set at initialization time.

// CustomConf returns the absolute path of custom configuration file that is used.
var CustomConf string

var (
	// Application settings
	App struct {
		BrandName string
		RunMode   string

		// Set by the main package at init time.
		Version string `ini:"-"`
	}

	// Server settings: [server]
	Server struct {
		HTTPAddr string `ini:"HTTP_ADDR"`
		HTTPPort string `ini:"HTTP_PORT"`
	}

	// Analysis settings: [analysis]
	Analysis struct {
		// DataThreshold is the minimum number of hiragana pairs an analyzer
		// has to observe before its confidence is considered meaningful.
		DataThreshold int
		// ChunkSize is the read buffer size used when streaming input.
		ChunkSize int
	}

	// Detection settings: [detection]
	Detection struct {
		// FallbackCharset is reported when detection fails, e.g. "Shift_JIS".
		// Leave empty to surface the failure to the caller instead.
		FallbackCharset string
	}

	// Prometheus settings: [prometheus]
	Prometheus struct {
		Enabled           bool
		EnableBasicAuth   bool
		BasicAuthUsername string
		BasicAuthPassword string
	}
)

// IsProdMode returns true if the application is running in production mode.
func IsProdMode() bool {
	return App.RunMode == "prod"
}
