package main

import (
	"os"

	"github.com/imsidplayer/sidratings/internal/cli"
)

const appName = "remove-ratings"

// These variables are set in build step
var (
	Version   = "unset"
	Revision  = "unset"
	BuildDate = "unset"
)

func main() {
	os.Exit(cli.Remove(cli.Version{
		AppName:   appName,
		Version:   Version,
		Revision:  Revision,
		BuildDate: BuildDate,
	}, os.Args[1:], cli.StdStreams()))
}
