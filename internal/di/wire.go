//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/faizhadyan1212/StuMa-Api/internal/app"
)

// InitializeApp wires the full application graph from environment
// configuration. Regenerate with `wire ./internal/di`.
func InitializeApp() (*app.App, error) {
	wire.Build(
		ConfigSet,
		ObservabilitySet,
		RuntimeInfraSet,
		RepositorySet,
		SecuritySet,
		ServiceSet,
		HTTPSet,
		AppSet,
	)
	return nil, nil
}
