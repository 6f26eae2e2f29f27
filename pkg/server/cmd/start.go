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

package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/pd-enterprise/backend-service/pkg/server/buildinfo"
	"github.com/pd-enterprise/backend-service/pkg/server/config"
	"github.com/pd-enterprise/backend-service/pkg/server/controllers"
	"github.com/pd-enterprise/backend-service/pkg/server/log"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func startCmd(args []string) {
	fs := setupFlagSet("start", "backend-service start")

	appEnv := fs.String("appEnv", "", "Application environment (env: APP_ENV, default: PRODUCTION)")
	port := fs.String("port", "", "Server port (env: PORT, default: 3001)")
	webURL := fs.String("webUrl", "", "Full URL to server without trailing slash (env: WebURL, default: http://localhost:3001)")
	mainDBPath := fs.String("mainDbPath", "", "Path to main directory SQLite database file (env: MainDBPath, default: $XDG_DATA_HOME/pd-enterprise/users.db)")
	notesDBPath := fs.String("notesDbPath", "", "Path to notes SQLite database file (env: NotesDBPath, default: $XDG_DATA_HOME/pd-enterprise/cnotes.db)")
	logLevel := fs.String("logLevel", "", "Log level: debug, info, warn, or error (env: LOG_LEVEL, default: info)")

	fs.Parse(args)

	// Load .env if present; flags and environment take precedence
	godotenv.Load()

	cfg, err := config.New(config.Params{
		AppEnv:      *appEnv,
		Port:        *port,
		WebURL:      *webURL,
		MainDBPath:  *mainDBPath,
		NotesDBPath: *notesDBPath,
		LogLevel:    *logLevel,
	})
	if err != nil {
		fmt.Printf("Error: %s\n\n", err)
		fs.Usage()
		os.Exit(1)
	}

	log.SetLevel(cfg.LogLevel)

	app := initApp(cfg)
	defer func() {
		for _, db := range []*gorm.DB{app.DB, app.NotesDB} {
			sqlDB, err := db.DB()
			if err == nil {
				sqlDB.Close()
			}
		}
	}()

	ctl := controllers.New(&app)
	rc := controllers.RouteConfig{
		APIRoutes:   controllers.NewAPIRoutes(&app, ctl),
		Controllers: ctl,
	}

	r, err := controllers.NewRouter(&app, rc)
	if err != nil {
		panic(errors.Wrap(err, "initializing router"))
	}

	log.WithFields(log.Fields{
		"version": buildinfo.Version,
		"port":    cfg.Port,
	}).Info("PD Enterprise backend starting")

	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.ErrorWrap(err, "server failed")
		os.Exit(1)
	}
}
