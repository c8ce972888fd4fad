//go:build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/park285/leetcode-profile-go/internal/config"
	"github.com/park285/leetcode-profile-go/internal/handler"
	"github.com/park285/leetcode-profile-go/internal/leetcode"
	"github.com/park285/leetcode-profile-go/internal/metrics"
	"github.com/park285/leetcode-profile-go/internal/profile"
	"github.com/park285/leetcode-profile-go/internal/server"
)

var profileSet = wire.NewSet(
	config.ProvideConfig,
	ProvideLogger,
	ProvideTelemetry,
	ProvideHTTPClient,
	ProvideLeetCodeClient,
	wire.Bind(new(profile.Fetcher), new(*leetcode.Client)),
	profile.NewService,
)

func InitializeApp() (*App, error) {
	wire.Build(
		profileSet,
		metrics.NewStore,
		wire.Bind(new(handler.ProfileService), new(*profile.Service)),
		handler.NewProfileHandler,
		handler.NewRouter,
		server.NewHTTPServer,
		NewApp,
	)
	return nil, nil
}

func InitializeTool() (*Tool, error) {
	wire.Build(
		profileSet,
		NewTool,
	)
	return nil, nil
}
