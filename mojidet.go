// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Mojidet is a streaming detector for legacy Japanese text encodings.
package main

import (
	"os"

	"github.com/urfave/cli"
	log "unknwon.dev/clog/v2"

	"github.com/mojidet/mojidet/internal/cmd"
	"github.com/mojidet/mojidet/internal/conf"
)

// Version is the current version of the application.
const Version = "0.4.1+dev"

func init() {
	conf.App.Version = Version
}

func main() {
	app := cli.NewApp()
	app.Name = "Mojidet"
	app.Usage = "A streaming detector for legacy Japanese text encodings"
	app.Version = Version
	app.Commands = []cli.Command{
		cmd.Detect,
		cmd.Web,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal("Failed to start application: %v", err)
	}
}
