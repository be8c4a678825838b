package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/michaeljohnaustria/my-garden/internal/domain"
	"github.com/michaeljohnaustria/my-garden/internal/persistence"
)

// SoilTypeRepository manages soil type persistence.
type SoilTypeRepository interface {
	List(ctx context.Context) ([]domain.SoilType, error)
	GetByID(ctx context.Context, id int64) (*domain.SoilType, error)
	Create(ctx context.Context, soil *domain.SoilType) error
	Update(ctx context.Context, id int64, patch domain.SoilTypePatch) error
	Delete(ctx context.Context, id int64) error
}

type soilTypeRepository struct {
	pool *pgxpool.Pool
}

// NewSoilTypeRepository builds the repository.
func NewSoilTypeRepository(pool *pgxpool.Pool) SoilTypeRepository {
	return &soilTypeRepository{pool: pool}
}

func (r *soilTypeRepository) List(ctx context.Context) (_ []domain.SoilType, err error) {
	ctx, span := startSpan(ctx, "soil_types", "list")
	defer func() { endSpan(span, err) }()

	const query = `
        SELECT soil_type_id, soil_type_description
        FROM soil_types ORDER BY soil_type_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.SoilType, 0)
	for rows.Next() {
		var soil domain.SoilType
		if err := rows.Scan(&soil.ID, &soil.Description); err != nil {
			return nil, err
		}
		result = append(result, soil)
	}
	return result, rows.Err()
}

func (r *soilTypeRepository) GetByID(ctx context.Context, id int64) (_ *domain.SoilType, err error) {
	ctx, span := startSpan(ctx, "soil_types", "get")
	defer func() { endSpan(span, err) }()

	const query = `
        SELECT soil_type_id, soil_type_description
        FROM soil_types WHERE soil_type_id=$1`
	var soil domain.SoilType
	if err := r.pool.QueryRow(ctx, query, id).Scan(&soil.ID, &soil.Description); err != nil {
		return nil, err
	}
	return &soil, nil
}

func (r *soilTypeRepository) Create(ctx context.Context, soil *domain.SoilType) (err error) {
	ctx, span := startSpan(ctx, "soil_types", "insert")
	defer func() { endSpan(span, err) }()

	const query = `
        INSERT INTO soil_types (soil_type_description)
        VALUES ($1)
        RETURNING soil_type_id`
	return persistence.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, soil.Description).Scan(&soil.ID)
	})
}

func (r *soilTypeRepository) Update(ctx context.Context, id int64, patch domain.SoilTypePatch) (err error) {
	ctx, span := startSpan(ctx, "soil_types", "update")
	defer func() { endSpan(span, err) }()

	const query = `
        UPDATE soil_types SET soil_type_description=COALESCE($1, soil_type_description)
        WHERE soil_type_id=$2`
	return persistence.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, query, patch.Description, id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

func (r *soilTypeRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "soil_types", "delete")
	defer func() { endSpan(span, err) }()

	const query = `DELETE FROM soil_types WHERE soil_type_id=$1`
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
