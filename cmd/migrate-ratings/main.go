package main

import (
	"os"

	"github.com/imsidplayer/sidratings/internal/cli"
)

const appName = "migrate-ratings"

// These variables are set in build step
var (
	Version   = "unset"
	Revision  = "unset"
	BuildDate = "unset"
)

func main() {
	os.Exit(cli.Migrate(cli.Version{
		AppName:   appName,
		Version:   Version,
		Revision:  Revision,
		BuildDate: BuildDate,
	}, os.Args[1:], cli.StdStreams()))
}
