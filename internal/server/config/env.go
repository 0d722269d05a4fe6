package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/dmitrijs2005/gophaccounts/internal/flagx"
	"github.com/joho/godotenv"
)

// envPrefix namespaces every variable, e.g. ACCOUNTS_DATABASE_DSN.
const envPrefix = "ACCOUNTS_"

// parseEnv overlays Config with ACCOUNTS_* environment variables. A dotenv
// file named by -f/-env-file is loaded first and must exist; otherwise a
// ./.env file is loaded when present. Variables already set in the process
// environment win over dotenv values. Unset variables leave fields untouched.
func parseEnv(config *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}
}
