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
	"stopwatch/config"

	"github.com/spf13/viper"
)

// Options collected from flags and the environment.
type Options struct {
	ConfigPath       string
	EnableVerboseLog bool
	DisableColor     bool
}

func GetConfig() (*Options, error) {
	path := viper.GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	return &Options{
		ConfigPath:       path,
		EnableVerboseLog: enableVerboseLog,
		DisableColor:     disableColor,
	}, nil
}
