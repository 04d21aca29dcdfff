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

package config

import (
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DisplayIntervalKey = "display_interval"
	DefaultFileName    = ".stopwatch.yaml"
)

// Store keeps the display interval in a yaml file.
// It owns a private viper instance so that it does not
// interfere with the command line configuration.
type Store struct {
	fs        afero.Fs
	path      string
	v         *viper.Viper
	logFields log.Fields
}

func (s *Store) LoadDisplayInterval() (float64, error) {
	if err := s.v.ReadInConfig(); err != nil {
		return 0, errors.Wrapf(err, "read config %s", s.path)
	}

	if !s.v.IsSet(DisplayIntervalKey) {
		return 0, errors.Errorf("%s is missing from %s", DisplayIntervalKey, s.path)
	}

	seconds, err := cast.ToFloat64E(s.v.Get(DisplayIntervalKey))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s in %s", DisplayIntervalKey, s.path)
	}

	log.WithFields(s.logFields).WithFields(log.Fields{"path": s.path, "seconds": seconds}).Debug("config loaded")
	return seconds, nil
}

func (s *Store) SaveDisplayInterval(seconds float64) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.WithStack(err)
	}

	// viper picks the encoder from the file extension, so the file is
	// written here to keep any name usable.
	s.v.Set(DisplayIntervalKey, seconds)
	data, err := yaml.Marshal(s.v.AllSettings())
	if err != nil {
		return errors.WithStack(err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write config %s", s.path)
	}

	log.WithFields(s.logFields).WithFields(log.Fields{"path": s.path, "seconds": seconds}).Debug("config saved")
	return nil
}

func (s *Store) Path() string {
	return s.path
}

// DefaultPath is the config file in the user's home directory.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return filepath.Join(home, DefaultFileName), nil
}

// NewStore creates a Store for the yaml file at path on fs.
func NewStore(fs afero.Fs, path string) *Store {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	return &Store{
		fs:        fs,
		path:      path,
		v:         v,
		logFields: log.Fields{"module": "config_store"},
	}
}
