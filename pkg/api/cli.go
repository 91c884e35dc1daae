package api

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/reiseplan/reiseplan/pkg/pricecache"
	"github.com/reiseplan/reiseplan/pkg/provider"
	"github.com/reiseplan/reiseplan/pkg/provider/transportrest"
	"github.com/reiseplan/reiseplan/pkg/util"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the journey search web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					return SetupServer(c.String("listen"), setupProvider())
				},
			},
		},
	}
}

func setupProvider() provider.Provider {
	if os.Getenv("REISEPLAN_PROVIDER") == "demo" {
		log.Info().Msg("Using the static demo journey provider")
		return provider.Demo{}
	}

	endpoint := util.GetEnvironmentVariable("REISEPLAN_TRANSPORT_REST_ENDPOINT", transportrest.DefaultEndpoint)
	log.Info().Str("endpoint", endpoint).Msg("Using the transport.rest journey provider")

	return transportrest.NewSource(endpoint, pricecache.New(pricecache.DefaultTTL))
}
