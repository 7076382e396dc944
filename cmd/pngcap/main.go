package main

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/pngcap"
	"github.com/urfave/cli/v2"
)

const defaultDB = "pngcap.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newExporter(c *cli.Context) (*pngcap.Exporter, *pngcap.CaptureDB, error) {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	db, err := pngcap.NewCaptureDB(c.String("db"))
	if err != nil {
		return nil, nil, err
	}

	return pngcap.New(db, logger), db, nil
}

func main() {
	app := cli.NewApp()

	app.Name = "pngcap"
	app.Usage = "Capture dump conversion utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"PNGCAP_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to catalog database",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "convert",
			Usage:       "Convert a raw capture dump to PNG",
			Description: "",
			ArgsUsage:   "FILE",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "bilinear upscale factor",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				scale := c.Int("scale")
				if scale < 1 {
					return cli.NewExitError("scale must be at least 1", 1)
				}

				e, db, err := newExporter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				file := c.Args().First()

				f, err := os.Open(file)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				d, err := pngcap.ReadDump(f)
				f.Close()
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				target := strings.TrimSuffix(file, filepath.Ext(file)) + ".png"

				if scale > 1 {
					err = e.ExportUpscaled(target, &d.ARGB, d.Width*scale, d.Height*scale)
				} else {
					err = e.Export(target, &d.ARGB)
				}
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Scan filesystem and convert capture dumps",
			Description: "",
			ArgsUsage:   "DIRECTORY",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				e, db, err := newExporter(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				if err := e.Scan(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
