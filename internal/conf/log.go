// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"os"
	"path/filepath"
	"strings"

	log "unknwon.dev/clog/v2"
)

// Log settings
var Log struct {
	RootPath string
	Modes    []string
}

// InitLogging initializes the logging service of the application. Because a
// console logger is always created as the primary logger at init time, it is
// removed in case the user does not configure the console mode.
func InitLogging() {
	Log.RootPath = File.Section("log").Key("ROOT_PATH").MustString(filepath.Join(WorkDir(), "log"))
	Log.Modes = strings.Split(File.Section("log").Key("MODE").MustString("console"), ",")

	levelMappings := map[string]log.Level{
		"trace": log.LevelTrace,
		"info":  log.LevelInfo,
		"warn":  log.LevelWarn,
		"error": log.LevelError,
		"fatal": log.LevelFatal,
	}

	hasConsole := false
	for _, mode := range Log.Modes {
		mode = strings.ToLower(strings.TrimSpace(mode))
		sec := File.Section("log." + mode)

		level := levelMappings[strings.ToLower(sec.Key("LEVEL").MustString("trace"))]
		buffer := sec.Key("BUFFER_LEN").MustInt64(100)
		var err error
		switch mode {
		case log.DefaultConsoleName:
			hasConsole = true
			err = log.NewConsole(buffer, log.ConsoleConfig{
				Level: level,
			})

		case log.DefaultFileName:
			logPath := filepath.Join(Log.RootPath, "mojidet.log")
			logDir := filepath.Dir(logPath)
			err = os.MkdirAll(logDir, os.ModePerm)
			if err != nil {
				log.Fatal("Failed to create log directory %q: %v", logDir, err)
				return
			}

			err = log.NewFile(buffer, log.FileConfig{
				Level:    level,
				Filename: logPath,
				FileRotationConfig: log.FileRotationConfig{
					Rotate:   sec.Key("LOG_ROTATE").MustBool(true),
					Daily:    sec.Key("DAILY_ROTATE").MustBool(true),
					MaxSize:  1 << uint(sec.Key("MAX_SIZE_SHIFT").MustInt(28)),
					MaxLines: sec.Key("MAX_LINES").MustInt64(1000000),
					MaxDays:  sec.Key("MAX_DAYS").MustInt64(7),
				},
			})

		default:
			continue
		}

		if err != nil {
			log.Fatal("Failed to init %s logger: %v", mode, err)
			return
		}
		log.Trace("Log mode: %s", strings.Title(mode))
	}

	if !hasConsole {
		log.Remove(log.DefaultConsoleName)
	}
}
