package episodes

import (
	"context"
	"database/sql"
	"sync"

	"clinregistry-service/internal/app/contracts"
	"clinregistry-service/internal/app/models"
	"clinregistry-service/internal/pkg/constvars"
	"clinregistry-service/internal/pkg/exceptions"
	"clinregistry-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type episodePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	episodePostgresRepositoryInstance contracts.EpisodeRepository
	onceEpisodePostgresRepository     sync.Once
)

func NewEpisodePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.EpisodeRepository {
	onceEpisodePostgresRepository.Do(func() {
		instance := &episodePostgresRepository{
			DB:  db,
			Log: logger,
		}
		episodePostgresRepositoryInstance = instance
	})
	return episodePostgresRepositoryInstance
}

func (r *episodePostgresRepository) FindAll(ctx context.Context) ([]models.Episode, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetAllEpisodes)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanEpisodes(rows)
}

func (r *episodePostgresRepository) FindByPatientID(ctx context.Context, patientID int64) ([]models.Episode, error) {
	rows, err := r.DB.QueryContext(ctx, queries.GetEpisodesByPatientID, patientID)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	return scanEpisodes(rows)
}

func (r *episodePostgresRepository) FindByID(ctx context.Context, episodeID int64) (*models.Episode, error) {
	var episode models.Episode
	err := r.DB.QueryRowContext(ctx, queries.GetEpisodeByID, episodeID).Scan(
		&episode.ID,
		&episode.PatientID,
		&episode.StartDate,
		&episode.EndDate,
		&episode.CreatedAt,
		&episode.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &episode, nil
}

func (r *episodePostgresRepository) Insert(ctx context.Context, episode *models.Episode) error {
	err := r.DB.QueryRowContext(ctx, queries.InsertEpisode,
		episode.PatientID,
		episode.StartDate,
		episode.EndDate,
	).Scan(&episode.ID, &episode.CreatedAt, &episode.UpdatedAt)
	if err != nil {
		return exceptions.ErrPostgresDBInsertData(err)
	}
	return nil
}

func (r *episodePostgresRepository) Update(ctx context.Context, episode *models.Episode) error {
	err := r.DB.QueryRowContext(ctx, queries.UpdateEpisode,
		episode.PatientID,
		episode.StartDate,
		episode.EndDate,
		episode.ID,
	).Scan(&episode.CreatedAt, &episode.UpdatedAt)
	if err == sql.ErrNoRows {
		return exceptions.ErrDataNotFound(err, constvars.ResourceEpisode)
	} else if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *episodePostgresRepository) Delete(ctx context.Context, episodeID int64) error {
	result, err := r.DB.ExecContext(ctx, queries.DeleteEpisode, episodeID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	if affected == 0 {
		return exceptions.ErrDataNotFound(nil, constvars.ResourceEpisode)
	}
	return nil
}

func scanEpisodes(rows *sql.Rows) ([]models.Episode, error) {
	var episodes []models.Episode
	for rows.Next() {
		var episode models.Episode
		if err := rows.Scan(
			&episode.ID,
			&episode.PatientID,
			&episode.StartDate,
			&episode.EndDate,
			&episode.CreatedAt,
			&episode.UpdatedAt,
		); err != nil {
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
		episodes = append(episodes, episode)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}

	return episodes, nil
}
