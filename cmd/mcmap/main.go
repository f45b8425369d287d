package main

import (
	"os"

	"github.com/bodgit/mcmap"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "mcmap"
	app.Usage = "Minecraft map item to PNG converter"
	app.Version = "1.0.0"
	app.ArgsUsage = "FILE..."
	app.Description = "Each map_<n>.dat file is written out as map_<n>.png alongside it. Directories are searched for map files."

	app.Flags = []cli.Flag{
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

		logger := logrus.New()
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logrus.WarnLevel)
		if c.Bool("verbose") {
			logger.SetLevel(logrus.DebugLevel)
		}

		m := mcmap.New(logger)

		if err := m.Run(c.Args().Slice()); err != nil {
			return cli.Exit(err, 1)
		}

		return nil
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
