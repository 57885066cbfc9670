package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/daniilsolovey/truck-portal/internal/auth"
	"github.com/daniilsolovey/truck-portal/internal/portal"
)

//go:generate zenrpc

const serverName = "truck-portal"

func New(logger *slog.Logger, manager *portal.Manager, authn *auth.Authenticator) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})

	rpcServer.Register("academy", NewAcademyService(manager))
	rpcServer.Register("jobs", NewJobsService(manager))
	rpcServer.Register("marketplace", NewMarketplaceService(manager))
	rpcServer.Register("knowledge", NewKnowledgeService(manager))
	rpcServer.Register("licenses", NewLicensesService(manager))
	rpcServer.Register("schools", NewSchoolsService(manager))
	rpcServer.Register("mechanics", NewMechanicsService(manager))
	rpcServer.Register("auth", NewAuthService(authn))
	rpcServer.Register("admin", NewAdminService(manager))

	rpcServer.Use(
		middleware.WithSLog(logger.InfoContext, serverName, nil),
		WithAuth(logger, authn, Policy),
		WithKnownParams(rpcServer.SMD()),
	)

	return rpcServer
}
