package main

import (
	"net/http"
	"os"
	"sync"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog/log"

	"github.com/transitkit/opendata-go/internal/config"
	"github.com/transitkit/opendata-go/internal/handler"
)

var (
	transportHandler *handler.TransportHandler
	setupOnce        sync.Once
	lambdaStart      = lambda.Start
	listenAndServe   = http.ListenAndServe
)

func setup() *config.Config {
	cfg := config.LoadFromEnv()
	setupOnce.Do(func() {
		cfg.InitializeLogging()

		log.Info().Str("env", cfg.Environment).Str("base_url", cfg.BaseURL).Msg("Environment")
		log.Debug().Msg("Debug logs enabled")

		transportHandler = handler.NewTransportHandler(cfg.NewClient())
	})
	return cfg
}

func isLocal(env string) bool {
	return env == "local" || env == "development"
}

func main() {
	cfg := setup()

	if !isLocal(cfg.Environment) {
		lambdaStart(transportHandler.HandleRequest)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("Serving locally")
	if err := listenAndServe(":"+port, transportHandler.Routes()); err != nil {
		log.Fatal().Err(err).Msg("Local server stopped")
	}
}
