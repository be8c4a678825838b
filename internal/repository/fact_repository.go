package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/michaeljohnaustria/my-garden/internal/domain"
	"github.com/michaeljohnaustria/my-garden/internal/persistence"
)

// FactRepository manages persistence for agronomic facts.
type FactRepository interface {
	List(ctx context.Context) ([]domain.Fact, error)
	GetByID(ctx context.Context, id int64) (*domain.Fact, error)
	Create(ctx context.Context, fact *domain.Fact) error
	Update(ctx context.Context, id int64, patch domain.FactPatch) error
	Delete(ctx context.Context, id int64) error
}

type factRepository struct {
	pool *pgxpool.Pool
}

// NewFactRepository constructs repository.
func NewFactRepository(pool *pgxpool.Pool) FactRepository {
	return &factRepository{pool: pool}
}

// Dates leave the store as YYYY-MM-DD whatever the session DateStyle.
const factColumns = `fact_id, vegetable_id, soil_type_id,
            to_char(best_time_to_sow, 'YYYY-MM-DD'), to_char(best_time_to_harvest, 'YYYY-MM-DD')`

func (r *factRepository) List(ctx context.Context) (_ []domain.Fact, err error) {
	ctx, span := startSpan(ctx, "facts", "list")
	defer func() { endSpan(span, err) }()

	query := `SELECT ` + factColumns + ` FROM facts ORDER BY fact_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Fact, 0)
	for rows.Next() {
		var fact domain.Fact
		if err := rows.Scan(
			&fact.ID,
			&fact.VegetableID,
			&fact.SoilTypeID,
			&fact.BestTimeToSow,
			&fact.BestTimeToHarvest,
		); err != nil {
			return nil, err
		}
		result = append(result, fact)
	}
	return result, rows.Err()
}

func (r *factRepository) GetByID(ctx context.Context, id int64) (_ *domain.Fact, err error) {
	ctx, span := startSpan(ctx, "facts", "get")
	defer func() { endSpan(span, err) }()

	query := `SELECT ` + factColumns + ` FROM facts WHERE fact_id=$1`
	var fact domain.Fact
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&fact.ID,
		&fact.VegetableID,
		&fact.SoilTypeID,
		&fact.BestTimeToSow,
		&fact.BestTimeToHarvest,
	); err != nil {
		return nil, err
	}
	return &fact, nil
}

func (r *factRepository) Create(ctx context.Context, fact *domain.Fact) (err error) {
	ctx, span := startSpan(ctx, "facts", "insert")
	defer func() { endSpan(span, err) }()

	const query = `
        INSERT INTO facts (vegetable_id, soil_type_id, best_time_to_sow, best_time_to_harvest)
        VALUES ($1,$2,$3,$4)
        RETURNING fact_id`
	return persistence.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			fact.VegetableID,
			fact.SoilTypeID,
			fact.BestTimeToSow,
			fact.BestTimeToHarvest,
		).Scan(&fact.ID)
	})
}

func (r *factRepository) Update(ctx context.Context, id int64, patch domain.FactPatch) (err error) {
	ctx, span := startSpan(ctx, "facts", "update")
	defer func() { endSpan(span, err) }()

	const query = `
        UPDATE facts SET
            vegetable_id=COALESCE($1, vegetable_id),
            soil_type_id=COALESCE($2, soil_type_id),
            best_time_to_sow=COALESCE($3, best_time_to_sow),
            best_time_to_harvest=COALESCE($4, best_time_to_harvest)
        WHERE fact_id=$5`
	return persistence.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, query,
			patch.VegetableID,
			patch.SoilTypeID,
			patch.BestTimeToSow,
			patch.BestTimeToHarvest,
			id,
		)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

func (r *factRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "facts", "delete")
	defer func() { endSpan(span, err) }()

	const query = `DELETE FROM facts WHERE fact_id=$1`
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
