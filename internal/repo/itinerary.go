package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/psharma/tripcraft/backend/internal/domain"
)

// txDB is a db that can also open a transaction. *pgxpool.Pool satisfies it
// directly; pgx.Tx satisfies it through savepoint-backed nested transactions,
// so integration tests keep their rollback isolation even across SaveTree.
type txDB interface {
	db
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ItineraryRepo defines the persistence operations for itineraries and their
// day/place tree.
type ItineraryRepo interface {
	// SaveTree inserts the itinerary row plus all day and place rows in a
	// single transaction and returns the persisted itinerary. Any failure
	// rolls the whole tree back — a saved itinerary is never partial.
	SaveTree(ctx context.Context, it domain.Itinerary, plans []domain.DayPlan) (domain.Itinerary, error)

	// GetByID retrieves a single itinerary by its UUID primary key.
	// Returns domain.ErrNotFound if no itinerary with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error)

	// LoadDayPlans reconstructs the day-plan tree for an itinerary: days
	// ordered by day number, places within each day ordered by order index
	// and joined with their catalog data.
	LoadDayPlans(ctx context.Context, itineraryID uuid.UUID) ([]domain.DayPlan, error)

	// ListPublic returns up to limit itineraries that are public and
	// published, most recently created first.
	ListPublic(ctx context.Context, limit int) ([]domain.Itinerary, error)

	// Publish flips the itinerary to public/published, scoped to the owning
	// user name. Returns domain.ErrNotFound when no row matches both the ID
	// and the owner.
	Publish(ctx context.Context, id uuid.UUID, owner string) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db txDB
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewItineraryRepo(db txDB) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

const itineraryColumns = `id, user_name, destination, title, num_days, total_estimated_cost,
	total_distance, interests, trip_type, start_date, end_date, is_public, status,
	views_count, likes_count, created_at, updated_at`

func (r *pgItineraryRepo) SaveTree(ctx context.Context, it domain.Itinerary, plans []domain.DayPlan) (domain.Itinerary, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.SaveTree: begin: %w", err)
	}
	// Rollback is a no-op after a successful commit.
	defer tx.Rollback(ctx)

	saved, err := insertItinerary(ctx, tx, it)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.SaveTree: %w", err)
	}

	for _, day := range plans {
		dayID, err := insertDay(ctx, tx, saved.ID, day)
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.SaveTree: day %d: %w", day.DayNumber, err)
		}
		for _, p := range day.Places {
			if err := insertPlaceInDay(ctx, tx, dayID, p); err != nil {
				return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.SaveTree: day %d place %q: %w",
					day.DayNumber, p.Place.ID, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.SaveTree: commit: %w", err)
	}
	return saved, nil
}

func insertItinerary(ctx context.Context, tx pgx.Tx, it domain.Itinerary) (domain.Itinerary, error) {
	q := `
		INSERT INTO itineraries (user_name, destination, title, num_days, total_estimated_cost,
			total_distance, interests, trip_type, start_date, end_date, is_public, status)
		VALUES (@user_name, @destination, @title, @num_days, @total_estimated_cost,
			@total_distance, @interests, @trip_type, @start_date, @end_date, @is_public, @status)
		RETURNING ` + itineraryColumns

	args := pgx.NamedArgs{
		"user_name":            it.UserName,
		"destination":          it.Destination,
		"title":                it.Title,
		"num_days":             it.NumDays,
		"total_estimated_cost": it.TotalEstimatedCost,
		"total_distance":       it.TotalDistance,
		"interests":            it.Interests,
		"trip_type":            it.TripType,
		"start_date":           it.StartDate, // nil becomes NULL
		"end_date":             it.EndDate,
		"is_public":            it.IsPublic,
		"status":               string(it.Status),
	}

	return scanItinerary(tx.QueryRow(ctx, q, args))
}

func insertDay(ctx context.Context, tx pgx.Tx, itineraryID uuid.UUID, day domain.DayPlan) (uuid.UUID, error) {
	const q = `
		INSERT INTO itinerary_days (itinerary_id, day_number, date, notes)
		VALUES (@itinerary_id, @day_number, @date, @notes)
		RETURNING id`

	args := pgx.NamedArgs{
		"itinerary_id": itineraryID,
		"day_number":   day.DayNumber,
		"date":         day.Date,
		"notes":        day.Notes,
	}

	var id pgtype.UUID
	if err := tx.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return uuid.UUID(id.Bytes), nil
}

func insertPlaceInDay(ctx context.Context, tx pgx.Tx, dayID uuid.UUID, p domain.PlaceInDay) error {
	const q = `
		INSERT INTO itinerary_places (itinerary_day_id, place_id, order_index, time_slot, custom_notes)
		VALUES (@itinerary_day_id, @place_id, @order_index, @time_slot, @custom_notes)`

	args := pgx.NamedArgs{
		"itinerary_day_id": dayID,
		"place_id":         p.Place.ID,
		"order_index":      p.OrderIndex,
		"time_slot":        string(p.TimeSlot),
		"custom_notes":     p.CustomNotes,
	}

	_, err := tx.Exec(ctx, q, args)
	return err
}

func (r *pgItineraryRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Itinerary, error) {
	q := `
		SELECT ` + itineraryColumns + `
		FROM itineraries
		WHERE id = @id`

	result, err := scanItinerary(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgItineraryRepo) LoadDayPlans(ctx context.Context, itineraryID uuid.UUID) ([]domain.DayPlan, error) {
	const daysQ = `
		SELECT day_number, date, notes
		FROM itinerary_days
		WHERE itinerary_id = @itinerary_id
		ORDER BY day_number`

	rows, err := r.db.Query(ctx, daysQ, pgx.NamedArgs{"itinerary_id": itineraryID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.LoadDayPlans: days: %w", err)
	}
	defer rows.Close()

	plans := []domain.DayPlan{}
	byNumber := map[int]int{} // day number -> index in plans
	for rows.Next() {
		var (
			d    domain.DayPlan
			date pgtype.Date
		)
		if err := rows.Scan(&d.DayNumber, &date, &d.Notes); err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.LoadDayPlans: scan day: %w", err)
		}
		if date.Valid {
			dt := date.Time
			d.Date = &dt
		}
		d.Places = []domain.PlaceInDay{}
		byNumber[d.DayNumber] = len(plans)
		plans = append(plans, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.LoadDayPlans: day rows: %w", err)
	}
	rows.Close()

	placesQ := `
		SELECT d.day_number, ip.order_index, ip.time_slot, ip.custom_notes,
			p.id, p.city, p.place_name, p.category, p.description, p.distance_from_center,
			p.recommended_time, p.entry_fee, p.rating, p.latitude, p.longitude, p.image_url,
			p.created_at, p.updated_at
		FROM itinerary_places ip
		JOIN itinerary_days d ON d.id = ip.itinerary_day_id
		JOIN places p ON p.id = ip.place_id
		WHERE d.itinerary_id = @itinerary_id
		ORDER BY d.day_number, ip.order_index`

	prows, err := r.db.Query(ctx, placesQ, pgx.NamedArgs{"itinerary_id": itineraryID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.LoadDayPlans: places: %w", err)
	}
	defer prows.Close()

	for prows.Next() {
		var (
			dayNumber int
			entry     domain.PlaceInDay
			slot      string
			pid       pgtype.UUID
			lat, lon  pgtype.Float8
		)
		err := prows.Scan(&dayNumber, &entry.OrderIndex, &slot, &entry.CustomNotes,
			&pid, &entry.City, &entry.Name, &entry.Category, &entry.Description,
			&entry.DistanceFromCenter, &entry.RecommendedTime, &entry.EntryFee, &entry.Rating,
			&lat, &lon, &entry.ImageURL, &entry.CreatedAt, &entry.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.LoadDayPlans: scan place: %w", err)
		}
		entry.Place.ID = uuid.UUID(pid.Bytes)
		entry.TimeSlot = domain.TimeSlot(slot)
		if lat.Valid {
			v := lat.Float64
			entry.Latitude = &v
		}
		if lon.Valid {
			v := lon.Float64
			entry.Longitude = &v
		}

		i, ok := byNumber[dayNumber]
		if !ok {
			return nil, fmt.Errorf("repo.ItineraryRepo.LoadDayPlans: place row references unknown day %d", dayNumber)
		}
		plans[i].Places = append(plans[i].Places, entry)
	}
	if err := prows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.LoadDayPlans: place rows: %w", err)
	}

	return plans, nil
}

func (r *pgItineraryRepo) ListPublic(ctx context.Context, limit int) ([]domain.Itinerary, error) {
	q := `
		SELECT ` + itineraryColumns + `
		FROM itineraries
		WHERE is_public = true AND status = 'published'
		ORDER BY created_at DESC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListPublic: %w", err)
	}
	defer rows.Close()

	its := []domain.Itinerary{}
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListPublic: scan: %w", err)
		}
		its = append(its, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListPublic: rows: %w", err)
	}
	return its, nil
}

func (r *pgItineraryRepo) Publish(ctx context.Context, id uuid.UUID, owner string) error {
	const q = `
		UPDATE itineraries
		SET is_public  = true,
		    status     = 'published',
		    updated_at = now()
		WHERE id = @id AND user_name = @owner`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "owner": owner})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Publish: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Publish: %w", domain.ErrNotFound)
	}
	return nil
}

// scanItinerary maps a single database row into a domain.Itinerary.
// It handles the UUID, text-array, and nullable date conversions.
func scanItinerary(s scanner) (domain.Itinerary, error) {
	var (
		it         domain.Itinerary
		id         pgtype.UUID
		status     string
		start, end pgtype.Date
	)

	err := s.Scan(&id, &it.UserName, &it.Destination, &it.Title, &it.NumDays,
		&it.TotalEstimatedCost, &it.TotalDistance, &it.Interests, &it.TripType,
		&start, &end, &it.IsPublic, &status, &it.ViewsCount, &it.LikesCount,
		&it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Itinerary{}, domain.ErrNotFound
		}
		return domain.Itinerary{}, err
	}

	it.ID = uuid.UUID(id.Bytes)
	it.Status = domain.ItineraryStatus(status)
	if start.Valid {
		t := start.Time
		it.StartDate = &t
	}
	if end.Valid {
		t := end.Time
		it.EndDate = &t
	}
	if it.Interests == nil {
		it.Interests = []string{}
	}

	return it, nil
}
