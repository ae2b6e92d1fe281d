package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// FULL SNAPSHOT
// --------------------------------------------------

func (r *PostgresRepository) Snapshot(ctx context.Context) (*MenuSnapshot, error) {

	snap := &MenuSnapshot{Sizes: DefaultSizeRange()}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, base_price, COALESCE(image_url, '')
		FROM specials
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s Special
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.BasePrice, &s.ImageURL); err != nil {
			return nil, err
		}
		snap.Specials = append(snap.Specials, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	trows, err := r.db.Query(ctx, `
		SELECT id, name, price
		FROM toppings
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer trows.Close()

	for trows.Next() {
		var t Topping
		if err := trows.Scan(&t.ID, &t.Name, &t.Price); err != nil {
			return nil, err
		}
		snap.Toppings = append(snap.Toppings, t)
	}
	if err := trows.Err(); err != nil {
		return nil, err
	}

	return snap, nil
}

// --------------------------------------------------
// SEARCH (ILIKE, CATALOG ORDER)
// --------------------------------------------------

func (r *PostgresRepository) SearchSpecials(
	ctx context.Context,
	query string,
) ([]Special, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, base_price, COALESCE(image_url, '')
		FROM specials
		WHERE name ILIKE '%' || $1 || '%'
		   OR description ILIKE '%' || $1 || '%'
		ORDER BY id
	`, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var specials []Special
	for rows.Next() {
		var s Special
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.BasePrice, &s.ImageURL); err != nil {
			return nil, err
		}
		specials = append(specials, s)
	}

	return specials, rows.Err()
}

func (r *PostgresRepository) SearchToppings(
	ctx context.Context,
	query string,
) ([]Topping, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, name, price
		FROM toppings
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY id
	`, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var toppings []Topping
	for rows.Next() {
		var t Topping
		if err := rows.Scan(&t.ID, &t.Name, &t.Price); err != nil {
			return nil, err
		}
		toppings = append(toppings, t)
	}

	return toppings, rows.Err()
}
