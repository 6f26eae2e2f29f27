/* Copyright 2025 PD Enterprise Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package config

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/pd-enterprise/backend-service/pkg/dirs"
	"github.com/pkg/errors"
)

const (
	// AppEnvProduction represents an app environment for production.
	AppEnvProduction string = "PRODUCTION"
	// DefaultDataDir is the default directory name for the service data
	DefaultDataDir = "pd-enterprise"
	// DefaultMainDBFilename is the default filename for the main directory database
	DefaultMainDBFilename = "users.db"
	// DefaultNotesDBFilename is the default filename for the notes database
	DefaultNotesDBFilename = "cnotes.db"
)

var (
	// DefaultMainDBPath is the default path to the main directory database file
	DefaultMainDBPath = filepath.Join(dirs.DataHome, DefaultDataDir, DefaultMainDBFilename)
	// DefaultNotesDBPath is the default path to the notes database file
	DefaultNotesDBPath = filepath.Join(dirs.DataHome, DefaultDataDir, DefaultNotesDBFilename)
)

var (
	// ErrMainDBMissingPath is an error for an incomplete configuration missing the main database path
	ErrMainDBMissingPath = errors.New("MainDBPath is empty")
	// ErrNotesDBMissingPath is an error for an incomplete configuration missing the notes database path
	ErrNotesDBMissingPath = errors.New("NotesDBPath is empty")
	// ErrWebURLInvalid is an error for an incomplete configuration with invalid web url
	ErrWebURLInvalid = errors.New("Invalid WebURL")
	// ErrPortInvalid is an error for an incomplete configuration with invalid port
	ErrPortInvalid = errors.New("Invalid Port")
)

// getOrEnv returns value if non-empty, otherwise env var, otherwise default
func getOrEnv(value, envKey, defaultVal string) string {
	if value != "" {
		return value
	}
	if env := os.Getenv(envKey); env != "" {
		return env
	}
	return defaultVal
}

// Config is an application configuration
type Config struct {
	AppEnv      string
	WebURL      string
	Port        string
	MainDBPath  string
	NotesDBPath string
	GroqAPIKey  string
	LogLevel    string
}

// Params are the configuration parameters for creating a new Config
type Params struct {
	AppEnv      string
	Port        string
	WebURL      string
	MainDBPath  string
	NotesDBPath string
	LogLevel    string
}

// New constructs and returns a new validated config.
// Empty string params will fall back to environment variables and defaults.
func New(p Params) (Config, error) {
	c := Config{
		AppEnv:      getOrEnv(p.AppEnv, "APP_ENV", AppEnvProduction),
		Port:        getOrEnv(p.Port, "PORT", "3001"),
		WebURL:      getOrEnv(p.WebURL, "WebURL", "http://localhost:3001"),
		MainDBPath:  getOrEnv(p.MainDBPath, "MainDBPath", DefaultMainDBPath),
		NotesDBPath: getOrEnv(p.NotesDBPath, "NotesDBPath", DefaultNotesDBPath),
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		LogLevel:    getOrEnv(p.LogLevel, "LOG_LEVEL", "info"),
	}

	if err := validate(c); err != nil {
		return Config{}, err
	}

	return c, nil
}

// IsProd checks if the app environment is configured to be production.
func (c Config) IsProd() bool {
	return c.AppEnv == AppEnvProduction
}

func validate(c Config) error {
	if _, err := url.ParseRequestURI(c.WebURL); err != nil {
		return errors.Wrapf(ErrWebURLInvalid, "'%s'", c.WebURL)
	}
	if c.Port == "" {
		return ErrPortInvalid
	}
	if c.MainDBPath == "" {
		return ErrMainDBMissingPath
	}
	if c.NotesDBPath == "" {
		return ErrNotesDBMissingPath
	}

	return nil
}
