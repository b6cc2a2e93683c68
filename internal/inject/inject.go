package inject

import (
	"context"
	"io"
	"net/http"

	"github.com/1broseidon/imagegen/client"
	"github.com/1broseidon/imagegen/internal/config"
	"github.com/1broseidon/imagegen/internal/logging"
	"github.com/1broseidon/imagegen/persist"
	"github.com/1broseidon/imagegen/pipeline"
	"github.com/1broseidon/imagegen/providers/googlegemini"
	"github.com/samber/do"
)

// Streams are the process streams a run talks to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Setup registers every component of a run. Services are built lazily on
// first invocation, so nothing touches the network until the pipeline runs.
func Setup(ctx context.Context, cfg *config.Config, streams Streams) *do.Injector {
	logger := logging.NewLogger(streams.Err, cfg.Level())

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Debugf(format, args...)
		},
	})

	do.ProvideValue[*config.Config](injector, cfg)
	do.ProvideValue[logging.Logger](injector, logger)
	do.ProvideValue[*http.Client](injector, http.DefaultClient)

	do.Provide[client.Provider](injector, func(i *do.Injector) (client.Provider, error) {
		provider, err := googlegemini.NewGoogleGeminiProvider(ctx, do.MustInvoke[*config.Config](i).APIKey)
		if err != nil {
			return nil, err
		}
		return provider, nil
	})
	do.Provide[*client.Client](injector, newClient)
	do.Provide[*persist.Downloader](injector, newDownloader)
	do.Provide[*pipeline.Pipeline](injector, func(i *do.Injector) (*pipeline.Pipeline, error) {
		return pipeline.New(
			do.MustInvoke[*client.Client](i),
			do.MustInvoke[*persist.Downloader](i),
			pipeline.WithInput(streams.In),
			pipeline.WithOutput(streams.Out),
			pipeline.WithLogger(do.MustInvoke[logging.Logger](i)),
		), nil
	})

	return injector
}

func newClient(i *do.Injector) (*client.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return client.NewClient(
		do.MustInvoke[client.Provider](i),
		client.WithModel(cfg.Model),
		client.WithStreaming(cfg.Stream),
		client.WithTemperature(cfg.Temperature),
		client.WithMaxTokens(cfg.MaxTokens),
		client.WithLogger(do.MustInvoke[logging.Logger](i)),
	)
}

func newDownloader(i *do.Injector) (*persist.Downloader, error) {
	return persist.NewDownloader(
		persist.WithHTTPClient(do.MustInvoke[*http.Client](i)),
		persist.WithLogger(do.MustInvoke[logging.Logger](i)),
	), nil
}
