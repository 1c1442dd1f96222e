package cli

import (
	"log/slog"

	"github.com/rsuth/clisurf/internal/buildinfo"
	"github.com/rsuth/clisurf/internal/domain"
	"github.com/rsuth/clisurf/internal/infra/config"
	"github.com/rsuth/clisurf/internal/infra/httpclient"
	"github.com/rsuth/clisurf/internal/infra/swellapi"
	"github.com/rsuth/clisurf/internal/ports"
	"github.com/rsuth/clisurf/internal/usecase"
)

type appCtx struct {
	cfg   domain.Config
	fetch *usecase.FetchSwell
}

func loadApp(configPath string, log *slog.Logger) (*appCtx, error) {
	var loader ports.ConfigLoader = config.NewLoader()

	cfg, err := loader.Load(configPath)
	if err != nil {
		return nil, err
	}

	client := httpclient.New(httpclient.Config{
		Timeout:   cfg.API.Timeout,
		UserAgent: "clisurf/" + buildinfo.Version,
	})

	source := swellapi.NewClient(
		swellapi.WithExecutor(httpclient.NewExecutor(httpclient.WithClient(client))),
		swellapi.WithLogger(log),
	)

	log.Debug("config.loaded", "base_url", cfg.API.BaseURL, "station", cfg.Defaults.Station, "units", cfg.Defaults.Units)

	return &appCtx{
		cfg:   cfg,
		fetch: usecase.NewFetchSwell(source, cfg.API.BaseURL),
	}, nil
}
