package routers

import (
	"clinregistry-service/internal/app/delivery/http/middlewares"
	"clinregistry-service/internal/app/services/core/episodes"

	"github.com/go-chi/chi/v5"
)

func attachEpisodeRoutes(router chi.Router, middlewares *middlewares.Middlewares, episodeController *episodes.EpisodeController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", episodeController.FindEpisodes)
	router.Post("/", episodeController.CreateEpisode)
	router.Get("/{episode_id}", episodeController.FindEpisodeByID)
	router.Put("/{episode_id}", episodeController.UpdateEpisode)
	router.Delete("/{episode_id}", episodeController.DeleteEpisode)
}
