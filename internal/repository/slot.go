package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/3lokai/Booking-system/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const slotColumns = "id, time_slot, is_booked, booker_name, booker_email, account_name, created_at, reminded_at"

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var s domain.Slot
	err := row.Scan(
		&s.ID, &s.TimeSlot, &s.IsBooked,
		&s.BookerName, &s.BookerEmail, &s.AccountName,
		&s.CreatedAt, &s.RemindedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *SlotRepository) List(ctx context.Context) ([]*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  ORDER BY time_slot ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT ` + slotColumns + `
			  FROM slots
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return s, nil
}

// CreateBatch seeds the generated calendar. Slot ids are deterministic, so
// concurrent first-loads both racing to seed resolve via ON CONFLICT.
func (r *SlotRepository) CreateBatch(ctx context.Context, slots []*domain.Slot) error {
	if len(slots) == 0 {
		return nil
	}

	builder := psql.Insert("slots").
		Columns("id", "time_slot", "is_booked", "booker_name", "booker_email", "account_name", "created_at").
		Suffix("ON CONFLICT (id) DO NOTHING")
	for _, s := range slots {
		builder = builder.Values(
			s.ID, s.TimeSlot, s.IsBooked,
			s.BookerName, s.BookerEmail, s.AccountName,
			s.CreatedAt,
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err = r.db.ExecWithRetry(ctx, r.strategy, query, args...); err != nil {
		return fmt.Errorf("insert slots: %w", err)
	}

	return nil
}

// FindBookedByIdentity is the conflict probe: the earliest booked slot whose
// booker email, account, or name matches. ErrBookingNotFound means no match.
func (r *SlotRepository) FindBookedByIdentity(ctx context.Context, name, email, account string) (*domain.Slot, error) {
	query, args, err := psql.Select(slotColumns).
		From("slots").
		Where(sq.Eq{"is_booked": true}).
		Where(sq.Or{
			sq.Eq{"booker_email": email},
			sq.Eq{"account_name": account},
			sq.Eq{"booker_name": name},
		}).
		OrderBy("time_slot ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build conflict probe: %w", err)
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("probe bookings: %w", err)
	}

	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booked slot: %w", err)
	}

	return s, nil
}

// Book commits the booking with a conditional update: it only lands if the
// slot is still unbooked. The partial unique indexes on booker identity act
// as the second line of defense when two commits race past the probe.
func (r *SlotRepository) Book(ctx context.Context, slotID string, in domain.BookingInput) (*domain.Slot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE slots
			  SET is_booked = TRUE, booker_name = $2, booker_email = $3, account_name = $4
			  WHERE id = $1 AND NOT is_booked
			  RETURNING ` + slotColumns

	s, err := scanSlot(tx.QueryRowContext(ctx, query, slotID, in.Name, in.Email, in.AccountName))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Либо слот не существует, либо его успели занять.
			var booked bool
			scanErr := tx.QueryRowContext(ctx, `SELECT is_booked FROM slots WHERE id = $1`, slotID).Scan(&booked)
			if scanErr != nil {
				if errors.Is(scanErr, sql.ErrNoRows) {
					return nil, domain.ErrSlotNotFound
				}
				return nil, fmt.Errorf("check slot: %w", scanErr)
			}
			if booked {
				return nil, domain.ErrSlotTaken
			}
			return nil, domain.ErrSlotNotFound
		}

		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, conflictFromConstraint(pgErr.Constraint, in)
		}
		return nil, fmt.Errorf("book slot: %w", err)
	}

	return s, tx.Commit()
}

func conflictFromConstraint(constraint string, in domain.BookingInput) error {
	switch constraint {
	case "slots_booker_email_booked_key":
		return &domain.ConflictError{Field: domain.ConflictEmail, Value: in.Email}
	case "slots_account_name_booked_key":
		return &domain.ConflictError{Field: domain.ConflictAccount, Value: in.AccountName}
	case "slots_booker_name_booked_key":
		return &domain.ConflictError{Field: domain.ConflictName, Value: in.Name}
	}

	return domain.ErrSlotTaken
}

// ClaimDueReminders atomically marks booked slots starting within the window
// as reminded and returns them, so each session is reminded exactly once.
func (r *SlotRepository) ClaimDueReminders(ctx context.Context, within time.Duration) ([]*domain.Slot, error) {
	query := `UPDATE slots
			  SET reminded_at = NOW()
			  WHERE is_booked
			    AND reminded_at IS NULL
			    AND time_slot > NOW()
			    AND time_slot <= NOW() + make_interval(secs => $1)
			  RETURNING ` + slotColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, within.Seconds())
	if err != nil {
		return nil, fmt.Errorf("claim due reminders: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		s, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, s)
	}

	return res, rows.Err()
}
