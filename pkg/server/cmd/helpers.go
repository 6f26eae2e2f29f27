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
	"flag"
	"fmt"

	"github.com/pd-enterprise/backend-service/pkg/clock"
	"github.com/pd-enterprise/backend-service/pkg/server/app"
	"github.com/pd-enterprise/backend-service/pkg/server/chat"
	"github.com/pd-enterprise/backend-service/pkg/server/config"
	"github.com/pd-enterprise/backend-service/pkg/server/database"
	"github.com/pd-enterprise/backend-service/pkg/server/log"
)

func getChatBackend(cfg config.Config) chat.Completer {
	if cfg.GroqAPIKey == "" {
		log.Debug("GROQ_API_KEY not set, chat endpoint disabled")
		return nil
	}

	log.Debug("Chat backend configured")
	return chat.NewGroqClient(cfg.GroqAPIKey)
}

func initApp(cfg config.Config) app.App {
	db := database.Open(cfg.MainDBPath)
	database.InitMainSchema(db)

	notesDB := database.Open(cfg.NotesDBPath)
	database.InitNotesSchema(notesDB)

	return app.App{
		DB:      db,
		NotesDB: notesDB,
		Clock:   clock.New(),
		Chat:    getChatBackend(cfg),
		AppEnv:  cfg.AppEnv,
		WebURL:  cfg.WebURL,
		Port:    cfg.Port,
	}
}

// printFlags prints flags with -- prefix for consistency with CLI
func printFlags(fs *flag.FlagSet) {
	fs.VisitAll(func(f *flag.Flag) {
		fmt.Printf("  --%s", f.Name)

		name, usage := flag.UnquoteUsage(f)
		if name != "" {
			fmt.Printf(" %s", name)
		}
		fmt.Println()

		if usage != "" {
			fmt.Printf("    \t%s", usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Printf(" (default: %s)", f.DefValue)
			}
			fmt.Println()
		}
	})
}

// setupFlagSet creates a FlagSet with standard usage format
func setupFlagSet(name, usageCmd string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Printf(`Usage:
  %s [flags]

Flags:
`, usageCmd)
		printFlags(fs)
	}
	return fs
}
