package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
                                     __
   ___  ___ ____ ___ __ _  ___ / /____ ____
  / _ \/ _ ` + "`" + `(_-</ __/  ' \/ -_) __/ -_) __/
 / .__/\_,_/___/\__/_/_/_/\__/\__/\__/_/
/_/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}

// GetUpdateCallback returns a callback function that updates passmeter
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("passmeter", version)()
	}
}
