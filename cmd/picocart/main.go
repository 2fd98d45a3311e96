package main

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/urfave/cli/v2"

	"github.com/picocart/picocart"
	"github.com/picocart/picocart/cart"
	"github.com/picocart/picocart/project"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "picocart"
	app.Usage = "convert a level-editor project into a PICO-8 cartridge"
	app.Version = "1.0.0"
	app.ArgsUsage = "PROJECT"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "policy",
			Value: "error",
			Usage: "shared-region overlap policy: error, map or sprite",
		},
		&cli.StringFlag{
			Name:  "script",
			Usage: "lua source file to embed in the cartridge",
		},
		&cli.BoolFlag{
			Name:  "reduce",
			Usage: "median-cut the tileset colors before palette matching",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.ShowAppHelpAndExit(c, 1)
		}
		path := c.Args().First()

		level := hclog.Warn
		if c.Bool("verbose") {
			level = hclog.Debug
		}
		logger := hclog.New(&hclog.LoggerOptions{
			Name:   "picocart",
			Level:  level,
			Output: os.Stderr,
		})

		policy, err := cart.ParsePolicy(c.String("policy"))
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		proj, err := project.Load(path)
		if err != nil {
			return cli.NewExitError(err, 1)
		}

		conv := picocart.New(logger)
		conv.Policy = policy
		conv.Reduce = c.Bool("reduce")
		conv.Decoder = picocart.FileDecoder{Base: filepath.Dir(path)}

		if script := c.String("script"); script != "" {
			b, err := os.ReadFile(script)
			if err != nil {
				return cli.NewExitError(err, 1)
			}
			conv.Script = string(b)
		}

		if _, err := conv.Convert(proj, os.Stdout); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
