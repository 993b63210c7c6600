package interfaces

import (
	"github.com/google/wire"

	"github.com/posty-app/post-api/internal/interfaces/httpserver"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/handlers/adminhandler"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/handlers/chathandler"
	"github.com/posty-app/post-api/internal/interfaces/httpserver/handlers/imagehandler"
	v1 "github.com/posty-app/post-api/internal/interfaces/httpserver/routes/v1"
)

// InterfacesProvider wires the HTTP handlers, routes and server.
var InterfacesProvider = wire.NewSet(
	chathandler.NewChatHandler,
	imagehandler.NewImageHandler,
	adminhandler.NewAdminHandler,
	v1.NewV1Route,
	httpserver.NewHttpServer,
)
