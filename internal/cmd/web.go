// Copyright 2023 The Mojidet Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"net"
	"net/http"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
	"gopkg.in/macaron.v1"
	log "unknwon.dev/clog/v2"

	"github.com/mojidet/mojidet/internal/conf"
	"github.com/mojidet/mojidet/internal/route"
)

var Web = cli.Command{
	Name:  "web",
	Usage: "Start the detection API server",
	Description: `The web server exposes charset detection over HTTP so other services
can stream bytes at it instead of shelling out to the binary`,
	Action: runWeb,
	Flags: []cli.Flag{
		stringFlag("port, p", "", "Temporary port number to prevent conflict"),
		stringFlag("config, c", "", "Custom configuration file path"),
	},
}

// newMacaron initializes Macaron instance.
func newMacaron() *macaron.Macaron {
	m := macaron.New()
	m.Use(macaron.Logger())
	m.Use(macaron.Recovery())
	m.Use(macaron.Renderer(macaron.RenderOptions{
		IndentJSON: !conf.IsProdMode(),
	}))
	return m
}

func runWeb(c *cli.Context) error {
	err := conf.Init(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "init configuration")
	}
	conf.InitLogging()

	if conf.IsProdMode() {
		macaron.Env = macaron.PROD
	}

	m := newMacaron()
	route.RegisterRoutes(m)

	port := conf.Server.HTTPPort
	if c.IsSet("port") {
		port = c.String("port")
	}
	listenAddr := net.JoinHostPort(conf.Server.HTTPAddr, port)
	log.Info("%s %s available on http://%s", conf.App.BrandName, conf.App.Version, listenAddr)

	if err := http.ListenAndServe(listenAddr, m); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}
