package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/reiseplan/reiseplan/pkg/api"

	_ "time/tzdata"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	if os.Getenv("REISEPLAN_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("REISEPLAN_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "reiseplan",
		Description: "Journey search aggregator over the transport.rest API",

		Commands: []*cli.Command{
			api.RegisterCLI(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Send()
	}
}
