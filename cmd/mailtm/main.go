// Command mailtm is a command-line front end for the mail.tm API.
//
// Settings come from MAILTM_* environment variables, optionally loaded from a
// .env file in the working directory, and can be overridden with flags:
//
//	mailtm create-account
//	mailtm token --address abc12345@example.com --password s3cr3tpw
//	MAILTM_TOKEN=eyJ0eXAi... mailtm messages --page 2
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
