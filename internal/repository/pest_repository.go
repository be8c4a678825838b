package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/michaeljohnaustria/my-garden/internal/domain"
	"github.com/michaeljohnaustria/my-garden/internal/persistence"
)

// PestRepository manages pest persistence.
type PestRepository interface {
	List(ctx context.Context) ([]domain.Pest, error)
	GetByID(ctx context.Context, id int64) (*domain.Pest, error)
	Create(ctx context.Context, pest *domain.Pest) error
	Update(ctx context.Context, id int64, patch domain.PestPatch) error
	Delete(ctx context.Context, id int64) error
}

type pestRepository struct {
	pool *pgxpool.Pool
}

// NewPestRepository constructs repository.
func NewPestRepository(pool *pgxpool.Pool) PestRepository {
	return &pestRepository{pool: pool}
}

func (r *pestRepository) List(ctx context.Context) (_ []domain.Pest, err error) {
	ctx, span := startSpan(ctx, "pests", "list")
	defer func() { endSpan(span, err) }()

	const query = `
        SELECT pest_id, pest_description, remedy_description
        FROM pests ORDER BY pest_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.Pest, 0)
	for rows.Next() {
		var pest domain.Pest
		if err := rows.Scan(&pest.ID, &pest.Description, &pest.RemedyDescription); err != nil {
			return nil, err
		}
		result = append(result, pest)
	}
	return result, rows.Err()
}

func (r *pestRepository) GetByID(ctx context.Context, id int64) (_ *domain.Pest, err error) {
	ctx, span := startSpan(ctx, "pests", "get")
	defer func() { endSpan(span, err) }()

	const query = `
        SELECT pest_id, pest_description, remedy_description
        FROM pests WHERE pest_id=$1`
	var pest domain.Pest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&pest.ID,
		&pest.Description,
		&pest.RemedyDescription,
	); err != nil {
		return nil, err
	}
	return &pest, nil
}

func (r *pestRepository) Create(ctx context.Context, pest *domain.Pest) (err error) {
	ctx, span := startSpan(ctx, "pests", "insert")
	defer func() { endSpan(span, err) }()

	const query = `
        INSERT INTO pests (pest_description, remedy_description)
        VALUES ($1,$2)
        RETURNING pest_id`
	return persistence.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query, pest.Description, pest.RemedyDescription).Scan(&pest.ID)
	})
}

func (r *pestRepository) Update(ctx context.Context, id int64, patch domain.PestPatch) (err error) {
	ctx, span := startSpan(ctx, "pests", "update")
	defer func() { endSpan(span, err) }()

	const query = `
        UPDATE pests SET
            pest_description=COALESCE($1, pest_description),
            remedy_description=COALESCE($2, remedy_description)
        WHERE pest_id=$3`
	return persistence.InTx(ctx, r.pool, func(tx pgx.Tx) error {
		cmd, err := tx.Exec(ctx, query, patch.Description, patch.RemedyDescription, id)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
}

func (r *pestRepository) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := startSpan(ctx, "pests", "delete")
	defer func() { endSpan(span, err) }()

	const query = `DELETE FROM pests WHERE pest_id=$1`
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
