// Package config wires viper with xten's config file, environment
// variables, and flag bindings.
package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xten/internal/dirs"
	"xten/internal/model"
)

// Init sets up the viper instance. It is non-fatal: a missing config
// file or unreadable config dir only means defaults apply.
func Init(root *cobra.Command) error {
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		_ = dirs.Ensure(cfgDir)
		viper.AddConfigPath(cfgDir)
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	viper.SetEnvPrefix("XTEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no_ui", root.PersistentFlags().Lookup("no-ui"))

	viper.SetDefault("preset", string(model.DefaultPreset))

	_ = viper.ReadInConfig()
	return nil
}

// DefaultPreset returns the configured default encoding preset.
func DefaultPreset() string {
	return viper.GetString("preset")
}
