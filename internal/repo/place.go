// Package repo contains all database access logic for the TripCraft API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharma/tripcraft/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PlaceRepo defines the read operations over the place catalog.
// The catalog is seeded by migrations and treated as read-only by the API.
type PlaceRepo interface {
	// ListByCity returns all catalog places for a city (case-insensitive),
	// ordered by place name.
	ListByCity(ctx context.Context, city string) ([]domain.Place, error)

	// GetByIDs returns the places matching the given IDs, ordered by place
	// name. IDs with no matching row are silently absent from the result;
	// callers that require full resolution compare lengths.
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Place, error)
}

// pgPlaceRepo is the Postgres implementation of PlaceRepo.
type pgPlaceRepo struct {
	db db
}

// NewPlaceRepo constructs a PlaceRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPlaceRepo(db db) PlaceRepo {
	return &pgPlaceRepo{db: db}
}

const placeColumns = `id, city, place_name, category, description, distance_from_center,
	recommended_time, entry_fee, rating, latitude, longitude, image_url, created_at, updated_at`

func (r *pgPlaceRepo) ListByCity(ctx context.Context, city string) ([]domain.Place, error) {
	q := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE lower(city) = lower(@city)
		ORDER BY place_name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"city": city})
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.ListByCity: %w", err)
	}
	defer rows.Close()

	places := []domain.Place{}
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PlaceRepo.ListByCity: scan: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.ListByCity: rows: %w", err)
	}
	return places, nil
}

func (r *pgPlaceRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Place, error) {
	if len(ids) == 0 {
		return []domain.Place{}, nil
	}

	q := `
		SELECT ` + placeColumns + `
		FROM places
		WHERE id = ANY(@ids)
		ORDER BY place_name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.GetByIDs: %w", err)
	}
	defer rows.Close()

	places := []domain.Place{}
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PlaceRepo.GetByIDs: scan: %w", err)
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PlaceRepo.GetByIDs: rows: %w", err)
	}
	return places, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scan helpers to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanPlace maps a single database row into a domain.Place.
// It handles the UUID and nullable latitude/longitude conversions.
func scanPlace(s scanner) (domain.Place, error) {
	var (
		p        domain.Place
		id       pgtype.UUID
		lat, lon pgtype.Float8
	)

	err := s.Scan(&id, &p.City, &p.Name, &p.Category, &p.Description, &p.DistanceFromCenter,
		&p.RecommendedTime, &p.EntryFee, &p.Rating, &lat, &lon, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Place{}, domain.ErrNotFound
		}
		return domain.Place{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	if lat.Valid {
		v := lat.Float64
		p.Latitude = &v
	}
	if lon.Valid {
		v := lon.Float64
		p.Longitude = &v
	}

	return p, nil
}
