// Package config handles environment-driven defaults for jumble.
// Flags always win; these only fill in values the user didn't pass.
//
// TODO: I have never seen a viper setup that I liked.
package config

import (
	"github.com/spf13/viper"
)

// Viper-based config loader
func Init() {
	viper.AutomaticEnv()
	viper.BindEnv("output", "JUMBLE_OUTPUT")
	viper.BindEnv("zero_terminated", "JUMBLE_ZERO_TERMINATED")
	viper.SetDefault("output", "")
	viper.SetDefault("zero_terminated", false)
}

// Output is the default output file; empty means stdout.
func Output() string {
	return viper.GetString("output")
}

// ZeroTerminated reports whether output lines should end in NUL
// rather than newline by default.
func ZeroTerminated() bool {
	return viper.GetBool("zero_terminated")
}
