package cmd

import (
	"fmt"

	"storage-provider/core/config"
	"storage-provider/core/logger"
	"storage-provider/core/storage"
	"storage-provider/feature/provider"

	"go.uber.org/zap"
)

// openProvider builds a provider service from the environment for one-shot
// commands.
func openProvider() (*provider.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	logg := logger.NewCLI(cfg.Log.Level)

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("create storage client: %w", err)
	}

	svc := provider.NewService(client, provider.ScopeFromConfig(cfg.Storage), logg,
		provider.WithPageSize(cfg.Storage.PageSize()))
	return svc, logg, nil
}

// metaFlags are the write metadata flags shared by put and mv.
type metaFlags struct {
	contentType string
	disposition string
	private     bool
	trashed     bool
}

func (f *metaFlags) meta() provider.ObjectMeta {
	return provider.ObjectMeta{
		MimeType:    f.contentType,
		Disposition: f.disposition,
		IsPrivate:   f.private,
		IsTrashed:   f.trashed,
	}
}
