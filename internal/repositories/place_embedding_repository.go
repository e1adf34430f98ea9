package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripgenie/internal/models/db_models"
)

type PlaceEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding db_models.PlaceEmbedding) error
	ListSimilar(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.PlaceEmbedding, error)
}

type placeEmbeddingRepository struct {
	db *gorm.DB
}

func NewPlaceEmbeddingRepository(db *gorm.DB) PlaceEmbeddingRepository {
	return &placeEmbeddingRepository{
		db: db,
	}
}

func (p *placeEmbeddingRepository) Upsert(ctx context.Context, embedding db_models.PlaceEmbedding) error {
	return p.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "place_id"}},
			UpdateAll: true,
		}).
		Create(&embedding).Error
}

func (p *placeEmbeddingRepository) ListSimilar(ctx context.Context, vector pgvector.Vector, limit int) ([]db_models.PlaceEmbedding, error) {
	var results []db_models.PlaceEmbedding

	vecStr := vector.String()

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM place_embeddings
        ORDER BY embedding <=> $1  -- Cosine distance (closer to 0 is better)
        LIMIT $2
    `

	err := p.db.WithContext(ctx).Raw(query, vecStr, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
