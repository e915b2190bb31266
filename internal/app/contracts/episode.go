package contracts

import (
	"context"

	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/dto/requests"
	"clinregistry-service/internal/pkg/dto/responses"
)

type EpisodeRepository interface {
	FindAll(ctx context.Context) ([]models.Episode, error)
	FindByPatientID(ctx context.Context, patientID int64) ([]models.Episode, error)
	FindByID(ctx context.Context, episodeID int64) (*models.Episode, error)
	Insert(ctx context.Context, episode *models.Episode) error
	Update(ctx context.Context, episode *models.Episode) error
	Delete(ctx context.Context, episodeID int64) error
}

type EpisodeUsecase interface {
	CreateEpisode(ctx context.Context, request *requests.CreateEpisode) (*responses.Episode, error)
	FindEpisodes(ctx context.Context, request *requests.ListEpisodes) ([]responses.Episode, error)
	FindEpisodeByID(ctx context.Context, episodeID int64) (*responses.Episode, error)
	UpdateEpisode(ctx context.Context, request *requests.UpdateEpisode) (*responses.Episode, error)
	DeleteEpisode(ctx context.Context, episodeID int64, sessionData string) error
}
