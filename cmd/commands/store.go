package commands

import (
	"github.com/spf13/viper"

	"github.com/orcaflat/orcaflat/pkg/store"
)

// newStore builds the profile store from the persistent flags and config
// file values bound into viper by the root command.
func newStore() (*store.Store, error) {
	return store.New(store.Config{
		BaseDir:     viper.GetString("config-dir"),
		UserProfile: viper.GetString("user-profile"),
		SamplesDir:  viper.GetString("samples-dir"),
	})
}
