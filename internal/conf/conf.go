// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
	log "unknwon.dev/clog/v2"
)

func init() {
	// Initialize the primary logger until logging service is up.
	err := log.NewConsole()
	if err != nil {
		panic("init console logger: " + err.Error())
	}
}

// File is the configuration object.
var File *ini.File

// Init initializes configuration from the default locations and the custom
// configuration file, when set. Defaults are applied for everything the file
// does not mention, so running without any configuration file is valid.
func Init(customConf string) (err error) {
	File = ini.Empty(ini.LoadOptions{
		IgnoreInlineComment: true,
	})
	File.NameMapper = ini.SnackCase

	if customConf == "" {
		customConf = filepath.Join(WorkDir(), "conf", "app.ini")
	} else {
		customConf, err = filepath.Abs(customConf)
		if err != nil {
			return errors.Wrap(err, "get absolute path")
		}
	}
	CustomConf = customConf

	if st, err := os.Stat(customConf); err == nil && !st.IsDir() {
		if err = File.Append(customConf); err != nil {
			return errors.Wrapf(err, "append %q", customConf)
		}
	} else {
		log.Trace("Custom config %q not found, using all default settings", customConf)
	}

	// ***************************
	// ----- App settings -----
	// ***************************

	App.BrandName = "Mojidet"
	App.RunMode = "dev"
	if err = File.Section(ini.DefaultSection).MapTo(&App); err != nil {
		return errors.Wrap(err, "mapping default section")
	}

	// ***************************
	// ----- Server settings -----
	// ***************************

	Server.HTTPAddr = "0.0.0.0"
	Server.HTTPPort = "7700"
	if err = File.Section("server").MapTo(&Server); err != nil {
		return errors.Wrap(err, "mapping [server] section")
	}

	// *****************************
	// ----- Analysis settings -----
	// *****************************

	Analysis.ChunkSize = 4096
	if err = File.Section("analysis").MapTo(&Analysis); err != nil {
		return errors.Wrap(err, "mapping [analysis] section")
	}
	if Analysis.ChunkSize <= 0 {
		Analysis.ChunkSize = 4096
	}
	if Analysis.DataThreshold < 0 {
		Analysis.DataThreshold = 0
	}

	if err = File.Section("detection").MapTo(&Detection); err != nil {
		return errors.Wrap(err, "mapping [detection] section")
	}

	if err = File.Section("prometheus").MapTo(&Prometheus); err != nil {
		return errors.Wrap(err, "mapping [prometheus] section")
	}

	return nil
}

// MustInit panics if configuration initialization failed.
func MustInit(customConf string) {
	err := Init(customConf)
	if err != nil {
		panic(err)
	}
}

// WorkDir returns the absolute path of work directory. It reads the value of
// environment variable MOJIDET_WORK_DIR, and falls back to the current
// working directory.
func WorkDir() string {
	if dir := os.Getenv("MOJIDET_WORK_DIR"); dir != "" {
		return dir
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}
