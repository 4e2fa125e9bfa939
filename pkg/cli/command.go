package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:    "isofetch",
		Usage:   "Fetch a CI-built ISO artifact and deliver it locally",
		Version: "0.1.0",
		Description: `isofetch resolves a successful GitHub Actions run, downloads the named
artifact bundle, unpacks its zip and 7z layers, verifies a content digest,
and copies the ISO into a destination directory (a Ventoy mount by default).

By default it targets the most recent successful run of the configured
workflow. Use --run-id, --sha, or --last-commit to pin a specific run.`,
		Flags:  flags,
		Action: RunFetch,
	}
}
