package internal

import (
	"net/http"

	"github.com/rantstats/rantstats-extension/internal/controllers"
	"github.com/rantstats/rantstats-extension/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/streams", http.HandlerFunc(apiController.GetStreams))
	routers.Get("/stream", http.HandlerFunc(apiController.GetStream))
	routers.Get("/video-ids", http.HandlerFunc(apiController.GetVideoIDs))
	routers.Get("/stream/messages", http.HandlerFunc(apiController.GetMessages))
	routers.Get("/stream/message-ids", http.HandlerFunc(apiController.GetMessageIDs))
	routers.Post("/stream/cache", http.HandlerFunc(apiController.CacheStream))
	routers.Delete("/stream/remove", http.HandlerFunc(apiController.RemoveStream))
	routers.Post("/message/cache", http.HandlerFunc(apiController.CacheMessage))
	routers.Post("/message/update", http.HandlerFunc(apiController.UpdateMessage))

	routers.Get("/options", http.HandlerFunc(apiController.GetOptions))
	routers.Post("/options/update", http.HandlerFunc(apiController.UpdateOptions))
	routers.Get("/width", http.HandlerFunc(apiController.GetWidth))
	routers.Post("/width/update", http.HandlerFunc(apiController.SetWidth))

	routers.Get("/users", http.HandlerFunc(apiController.GetUsers))
	routers.Get("/user", http.HandlerFunc(apiController.GetUser))
	routers.Post("/user/update", http.HandlerFunc(apiController.UpdateUser))
	routers.Post("/users/parse", http.HandlerFunc(apiController.ParseUsers))
	routers.Get("/badges", http.HandlerFunc(apiController.GetBadges))
	routers.Get("/badge", http.HandlerFunc(apiController.GetBadge))
	routers.Post("/badges/save", http.HandlerFunc(apiController.SaveBadges))

	routers.Get("/levels", http.HandlerFunc(apiController.GetLevels))
	routers.Post("/levels/save", http.HandlerFunc(apiController.SaveLevels))

	routers.Get("/usage", http.HandlerFunc(apiController.GetUsage))
	routers.Post("/history/clean", http.HandlerFunc(apiController.CleanHistory))
	return routers
}
