// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli"
)

// defaultInput is the sample text the demonstration runs when none is given.
const defaultInput = "Hello world!"

// VERSION is populated via build flags when packaging official binaries.
var VERSION = "SELFBUILD"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		warnFailure(os.Stderr, err)
		checkError(err)
	}
}

// warnFailure highlights a failed run. Standard output is reserved for the
// report lines.
func warnFailure(w io.Writer, err error) {
	color.New(color.FgRed).Fprintln(w, "spn:", err)
}

// newApp builds the command. Its action returns errors instead of exiting so
// the log file is closed before main terminates the process.
func newApp() *cli.App {
	myApp := cli.NewApp()
	myApp.Name = "spn"
	myApp.Usage = "single round substitution-permutation network demo"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "input,i",
			Value:  defaultInput,
			Usage:  "sample text to run through the network",
			EnvVar: "SPN_INPUT",
		},
		cli.StringFlag{
			Name:  "crypt",
			Value: "spn",
			Usage: "packet crypt for the self-check: spn, none, null",
		},
		cli.BoolFlag{
			Name:  "stream",
			Usage: "also round-trip the sample through a compressed SPN stream",
		},
		cli.StringFlag{
			Name:  "log",
			Value: "",
			Usage: "specify a log file to output, default goes to stderr",
		},
		cli.StringFlag{
			Name:  "loglevel",
			Value: "info",
			Usage: "debug, info, warn, error",
		},
		cli.StringFlag{
			Name:  "logformat",
			Value: "console",
			Usage: "console, json",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "", // when set, the referenced JSON file must exist on disk
			Usage: "config from json file, which will override the command from shell",
		},
	}
	myApp.Action = func(c *cli.Context) error {
		config := Config{}
		config.Input = c.String("input")
		config.Crypt = c.String("crypt")
		config.Stream = c.Bool("stream")
		config.Log = c.String("log")
		config.LogLevel = c.String("loglevel")
		config.LogFormat = c.String("logformat")

		if c.String("c") != "" {
			if err := parseJSONConfig(&config, c.String("c")); err != nil {
				return err
			}
		}

		// Redirect logs when the user supplied a dedicated log file.
		var logOutput io.Writer = os.Stderr
		if config.Log != "" {
			f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			if err != nil {
				return errors.Wrap(err, "open log file")
			}
			defer f.Close()
			logOutput = f
		}

		logger, err := newLogger(logOutput, config.LogFormat, config.LogLevel)
		if err != nil {
			return err
		}
		log.Logger = logger

		logger.Info().
			Str("version", VERSION).
			Str("crypt", config.Crypt).
			Bool("stream", config.Stream).
			Int("input_bytes", len(config.Input)).
			Msg("starting")

		return run(c.App.Writer, &config, logger)
	}
	return myApp
}

// checkError logs the supplied fatal error and terminates the process.
func checkError(err error) {
	if err != nil {
		log.Error().Msgf("%+v", err)
		os.Exit(-1)
	}
}
