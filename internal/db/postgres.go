package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the catalog tables and seeds the demo menu when the
// store is empty
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// SPECIALS
	// -------------------------------
	specialsSQL := `
		CREATE TABLE IF NOT EXISTS specials (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			base_price NUMERIC(8,2) NOT NULL CHECK (base_price >= 0),
			image_url VARCHAR(500)
		)
	`
	if _, err := db.Exec(ctx, specialsSQL); err != nil {
		return err
	}

	// -------------------------------
	// TOPPINGS
	// -------------------------------
	toppingsSQL := `
		CREATE TABLE IF NOT EXISTS toppings (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			price NUMERIC(8,2) NOT NULL CHECK (price >= 0)
		)
	`
	if _, err := db.Exec(ctx, toppingsSQL); err != nil {
		return err
	}

	if err := seedMenu(db); err != nil {
		return err
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}

// seedMenu loads the demo menu once. Existing rows are left alone so a
// store that manages its own catalog is never overwritten.
func seedMenu(db *pgxpool.Pool) error {
	ctx := context.Background()

	var specials int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM specials`).Scan(&specials); err != nil {
		return err
	}

	if specials == 0 {
		_, err := db.Exec(ctx, `
			INSERT INTO specials (name, description, base_price) VALUES
			('Margherita', 'Tomato sauce, fresh mozzarella and basil', 9.99),
			('Classic Pepperoni', 'Loaded with our signature pepperoni', 10.50),
			('Basic Cheese Pizza', 'It''s cheesy and delicious. Why wouldn''t you want one?', 9.99),
			('Veggie Delight', 'Peppers, onions, mushrooms and olives', 11.00),
			('Buffalo Chicken', 'Spicy buffalo sauce with grilled chicken', 12.75),
			('Hawaiian', 'Ham and pineapple, for the brave', 10.25),
			('Meat Feast', 'Pepperoni, sausage, bacon and ham', 13.50),
			('Four Cheese', 'Mozzarella, cheddar, parmesan and gorgonzola', 11.50)
		`)
		if err != nil {
			return err
		}
	}

	var toppings int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM toppings`).Scan(&toppings); err != nil {
		return err
	}

	if toppings == 0 {
		_, err := db.Exec(ctx, `
			INSERT INTO toppings (name, price) VALUES
			('Mushrooms', 1.00),
			('Onions', 0.50),
			('Green peppers', 0.75),
			('Black olives', 0.75),
			('Fresh basil', 1.00),
			('Ham', 1.50),
			('Extra cheese', 2.50),
			('Pepperoni', 1.50),
			('Grilled chicken', 2.00),
			('Bacon', 1.75),
			('Pineapple', 1.00),
			('Jalapenos', 0.75)
		`)
		if err != nil {
			return err
		}
	}

	return nil
}
