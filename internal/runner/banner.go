package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = `
                                          __             
   _________ ___  ______  __  ______ ___  / /_  ___  _____
  / ___/ __ '/ / / / __ \/ / / / __ '__ \/ __ \/ _ \/ ___/
 (__  ) /_/ / /_/ / / / / /_/ / / / / / / /_/ /  __/ /    
/____/\__,_/\__, /_/ /_/\__,_/_/ /_/ /_/_.___/\___/_/     
           /____/                                          
`

var version = "v1.0.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tgerman names of (very) big numbers\n\n")
}
