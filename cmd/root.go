/*
Copyright © 2020 Stopwatch Contributors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"os"

	"stopwatch/config"
	"stopwatch/core"
	"stopwatch/shell"

	"github.com/jonboulle/clockwork"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string
var enableVerboseLog, disableColor bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stopwatch",
	Short: "An interactive command line stopwatch",
	Long: `Stopwatch measures elapsed time across start, pause and stop,
records laps and keeps redrawing the running time in the background.
The display interval is remembered between runs.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := GetConfig()
		if err != nil {
			return err
		}
		return run(options)
	},
}

func run(options *Options) error {
	if options.EnableVerboseLog {
		log.SetLevel(log.DebugLevel)
	}
	shell.DisableColorBasedOnEnvVar()
	if options.DisableColor {
		shell.DisableColor()
	}

	store := config.NewStore(afero.NewOsFs(), options.ConfigPath)
	sw := core.NewStopwatch(os.Stdout, clockwork.NewRealClock(), store)
	sh := shell.NewShell(sw, shell.NewPrompter(os.Stdin, os.Stdout), os.Stdout)
	return shell.RunCLIInstance(sh, sw)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.stopwatch.yaml)")
	rootCmd.Flags().BoolVarP(&enableVerboseLog, "verbose", "v", false, "enable verbose logging")
	rootCmd.Flags().BoolVar(&disableColor, "no-color", false, "disable colored output")
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

// initConfig lets STOPWATCH_CONFIG stand in for --config.
func initConfig() {
	viper.SetEnvPrefix("stopwatch")
	viper.AutomaticEnv()
}
