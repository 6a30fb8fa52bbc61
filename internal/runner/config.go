package runner

import (
	"os"
	"path/filepath"

	"github.com/camillo/saynumber"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

// defaultSayConfig holds the user defaults for all say options
var defaultSayConfig = filepath.Join(getUserHomeDir(), ".config/saynumber/say.yaml")

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

func init() {
	if !fileutil.FileExists(defaultSayConfig) {
		return
	}
	// if it exists use that data as default
	cfg, err := saynumber.NewConfig(defaultSayConfig)
	if err != nil {
		gologger.Error().Msgf("failed to load default config %v got: %v", defaultSayConfig, err)
		return
	}
	saynumber.DefaultConfig = *cfg
}
