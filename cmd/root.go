/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "msmouse",
	Short: "Driver and tools for Microsoft-protocol serial mice",
	Long: `msmouse is a driver and toolbox for two-button serial mice speaking
the Microsoft protocol over RS-232.

It can list candidate ports, probe a port for an attached mouse, decode
raw packet bytes, and stream movement events either as plain text or in
a live terminal UI.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.msmouse.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".msmouse" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".msmouse")
	}

	viper.SetEnvPrefix("msmouse")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolvePort returns the port path from the command line, falling back
// to the "port" config key (config file or MSMOUSE_PORT).
func resolvePort(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if port := viper.GetString("port"); port != "" {
		return port, nil
	}
	return "", fmt.Errorf("no port given and no default configured (set \"port\" in %s or MSMOUSE_PORT)", "$HOME/.msmouse.yaml")
}

// newLogger builds the logger used by commands that run the driver.
// Debug level when --verbose is set, errors only otherwise so event
// output stays readable.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
