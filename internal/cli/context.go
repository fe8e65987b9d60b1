package cli

import (
	"context"

	"github.com/rshade/carbonfocus/internal/config"
)

type configKey struct{}

// contextWithConfig stores the loaded configuration on the context.
func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the loaded configuration, or defaults when
// the root command's PersistentPreRunE has not run (direct subcommand
// construction in tests).
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.New()
}
