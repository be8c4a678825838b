package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/michaeljohnaustria/my-garden/internal/domain"
	"github.com/michaeljohnaustria/my-garden/internal/persistence"
)

// VegetableRepository manages vegetable persistence.
type VegetableRepository interface {
	List(ctx context.Context) ([]domain.Vegetable, error)
	GetByID(ctx context.Context, id int64) (*domain.Vegetable, error)
	Create(ctx context.Context, veg *domain.Vegetable) error
	Update(ctx context.Context, id int64, patch domain.VegetablePatch) error
	Delete(ctx context.Context, id int64) error
}

type vegetableRepository struct {
	pool *pgxpool.Pool
}

// NewVegetableRepository returns a Postgres-backed implementation.
func NewVegetableRepository(pool *pgxpool.Pool) VegetableRepository {
	return &vegetableRepository{pool: pool}
}

func (r *vegetableRepository) List(ctx context.Context) (_ []domain.Vegetable, err error) {
	ctx, span := startSpan(ctx, "vegetables", "list")
	defer func() { endSpan(span, err) }()

	const query = `
        SELECT vegetable_id, vegetable_name, recommended_soil_type
        FROM vegetables ORDER BY vegetable_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Vegetable, 0)
	for rows.Next() {
		var veg domain.Vegetable
		if err := rows.Scan(&veg.ID, &veg.Name, &veg.RecommendedSoilType); err != nil {
			return nil, err
		}
		result = append(result, veg)
	}
	return result, rows.Err()
}

func (r *vegetableRepository) GetByID(ctx context.Context, id int64) (_ *domain.Vegetable, err error) {
	ctx, span := startSpan(ctx, "vegetables", "get")
	defer func() { endSpan(span, err) }()

	const query = `
        SELECT vegetable_id, vegetable_name, recommended_soil_type
        FROM vegetables WHERE vegetable_id=$1`
	var veg domain.Vegetable
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&veg.ID,
		&veg.Name,
		&veg.RecommendedSoilType,
	); err != nil {
		return nil, err
	}
	return &veg, nil
}

func (r *vegetableRepository) Create(ctx context.Context, veg *domain.Vegetable) (err error) {
	ctx, span := startSpan(ctx, "vegetables", "insert")
	defer func() { endSpan(span, err) }()

	const query = `
        INSERT INTO vegetables (vegetable_name, recommended_soil_type)
        VALUES ($1,$2)
        RETURNING vegetable_id`
	return persistence.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, veg.Name, veg.RecommendedSoilType).Scan(&veg.ID)
	})
}

func (r *vegetableRepository) Update(ctx context.Context, id int64, patch domain.VegetablePatch) (err error) {
	ctx, span := startSpan(ctx, "vegetables", "update")
	defer func() { endSpan(span, err) }()

	const query = `
        UPDATE vegetables SET
            vegetable_name=COALESCE($1, vegetable_name),
            recommended_soil_type=COALESCE($2, recommended_soil_type)
        WHERE vegetable_id=$3`
	return persistence.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, query, patch.Name, patch.RecommendedSoilType, id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

func (r *vegetableRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "vegetables", "delete")
	defer func() { endSpan(span, err) }()

	const query = `DELETE FROM vegetables WHERE vegetable_id=$1`
	return persistence.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, query, id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}
