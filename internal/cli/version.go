package cli

import (
	"fmt"
	"runtime/debug"
	"strings"
)

type Version struct {
	AppName   string
	Version   string
	Revision  string
	BuildDate string
}

// descriptions of the two programs shipped by this module
var descriptions = map[string]string{
	"migrate-ratings": "move track ratings from history.json to rating.json",
	"remove-ratings":  "strip track ratings from history.json",
}

func (v Version) Print() string {
	var s strings.Builder
	switch v.Version {
	case "", "unset", "unknown", "develop":
		if info, ok := debug.ReadBuildInfo(); ok {
			v.Version = info.Main.Version
		}
	}
	if desc, ok := descriptions[v.AppName]; ok {
		fmt.Fprintln(&s, v.AppName+" - "+desc)
	} else {
		fmt.Fprintln(&s, v.AppName)
	}
	fmt.Fprintln(&s, "")
	fmt.Fprintln(&s, "version: "+v.Version)
	fmt.Fprintln(&s, "revision: "+v.Revision)
	fmt.Fprintln(&s, "buildDate: "+v.BuildDate)
	return s.String()
}
