// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	defer MustInit("")

	require.NoError(t, Init(filepath.Join("testdata", "custom.ini")))

	assert.Equal(t, "Mojidet Test", App.BrandName)
	assert.True(t, IsProdMode())

	assert.Equal(t, "127.0.0.1", Server.HTTPAddr)
	assert.Equal(t, "7171", Server.HTTPPort)

	assert.Equal(t, 4, Analysis.DataThreshold)
	assert.Equal(t, 512, Analysis.ChunkSize)

	assert.Equal(t, "Shift_JIS", Detection.FallbackCharset)

	assert.True(t, Prometheus.Enabled)
	assert.True(t, Prometheus.EnableBasicAuth)
	assert.Equal(t, "metrics", Prometheus.BasicAuthUsername)
	assert.Equal(t, "secret", Prometheus.BasicAuthPassword)
}

func TestInit_Defaults(t *testing.T) {
	defer MustInit("")

	require.NoError(t, Init(filepath.Join("testdata", "does_not_exist.ini")))

	assert.Equal(t, "Mojidet", App.BrandName)
	assert.False(t, IsProdMode())
	assert.Equal(t, "0.0.0.0", Server.HTTPAddr)
	assert.Equal(t, "7700", Server.HTTPPort)
	assert.Equal(t, 0, Analysis.DataThreshold)
	assert.Equal(t, 4096, Analysis.ChunkSize)
	assert.Empty(t, Detection.FallbackCharset)
	assert.False(t, Prometheus.Enabled)
}
