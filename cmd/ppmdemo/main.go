// Copyright 2012 Harry de Boer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package main plots projectile and clock demos into plain PPM files.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/jbuchbinder/goppm/internal/logging"
)

const (
	// Flags.
	flagDebug  = "debug"
	flagOutput = "output"
	flagWidth  = "width"
	flagHeight = "height"
	flagSpeed  = "speed"
	flagSize   = "size"
	flagTicks  = "max-ticks"
)

func newApp() *cli.App {
	var logger *zap.Logger
	return &cli.App{
		Name:            "ppmdemo",
		Usage:           "simulate simple scenes and write them as plain PPM images",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				EnvVars: []string{"PPM_DEBUG"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			logger, err = logging.NewLogger("ppmdemo", c.Bool(flagDebug))
			return err
		},
		After: func(c *cli.Context) error {
			if logger != nil {
				//nolint:errcheck
				logger.Sync()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "projectile",
				Usage: "log the position and velocity of a projectile until it lands",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    flagTicks,
						Value:   defaultMaxTicks,
						EnvVars: []string{"PPM_MAX_TICKS"},
						Usage:   "give up after `N` ticks",
					},
				},
				Action: func(c *cli.Context) error {
					return runProjectile(c.Int(flagTicks), logger)
				},
			},
			{
				Name:  "trajectory",
				Usage: "plot the path of a projectile",
				Flags: []cli.Flag{
					outputFlag("projectile.ppm"),
					&cli.IntFlag{Name: flagWidth, Value: 900, Usage: "canvas width in pixels"},
					&cli.IntFlag{Name: flagHeight, Value: 550, Usage: "canvas height in pixels"},
					&cli.Float64Flag{Name: flagSpeed, Value: 11.25, Usage: "launch speed in pixels per tick"},
					&cli.IntFlag{
						Name:    flagTicks,
						Value:   defaultMaxTicks,
						EnvVars: []string{"PPM_MAX_TICKS"},
						Usage:   "give up after `N` ticks",
					},
				},
				Action: func(c *cli.Context) error {
					return runTrajectory(trajectoryConfig{
						Output:   c.String(flagOutput),
						Width:    c.Int(flagWidth),
						Height:   c.Int(flagHeight),
						Speed:    c.Float64(flagSpeed),
						MaxTicks: c.Int(flagTicks),
					}, logger)
				},
			},
			{
				Name:  "clock",
				Usage: "plot the twelve hour marks of a clock face",
				Flags: []cli.Flag{
					outputFlag("clock.ppm"),
					&cli.IntFlag{Name: flagSize, Value: 100, Usage: "canvas width and height in pixels"},
				},
				Action: func(c *cli.Context) error {
					return runClock(c.String(flagOutput), c.Int(flagSize), logger)
				},
			},
		},
	}
}

func outputFlag(value string) cli.Flag {
	return &cli.StringFlag{
		Name:      flagOutput,
		Aliases:   []string{"o"},
		Value:     value,
		EnvVars:   []string{"PPM_OUTPUT"},
		TakesFile: true,
		Usage:     "write the image to `FILE`, - for stdout",
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
