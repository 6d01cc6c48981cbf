// Copyright Media Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the whitepaper-engine CLI. It
// assembles pre-written marketing and technical content into Word or
// Markdown whitepaper documents, parameterized by industry and document
// type.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the whitepaper-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "whitepaper-engine",
	Short: "Generate MIZ OKI 3.0 whitepaper documents",
	Long: `whitepaper-engine assembles pre-written marketing and technical content
into whitepaper documents. Content is selected by industry (healthcare,
media_buying, general_business) and document type (business, technical,
premium), then rendered to Markdown, Word, or both.

The content catalog ships embedded in the binary; pass --catalog to load an
external catalog file instead.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(viper.GetString("log_level"))
		if err != nil {
			level = logrus.InfoLevel
		}
		logrus.SetLevel(level)
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./whitepaper-engine.yaml or ~/.config/whitepaper-engine/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("whitepaper-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "whitepaper-engine"))
		}
	}

	viper.SetEnvPrefix("WHITEPAPER_ENGINE")
	viper.AutomaticEnv()
	viper.SetDefault("log_level", "info")
	viper.SetDefault("product", "MIZ_OKI_3.0")
	viper.SetDefault("output_dir", "generated_whitepapers")

	if err := viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintln(os.Stderr, "binding log-level flag:", err)
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
