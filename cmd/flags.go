package cmd

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlag makes the flag name the highest priority source of the config key.
func bindFlag(v *viper.Viper, flags *pflag.FlagSet, key, name string) {
	f := flags.Lookup(name)
	if f == nil {
		panic(fmt.Sprintf("flag --%s is not defined", name))
	}
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}
