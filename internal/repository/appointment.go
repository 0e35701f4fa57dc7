package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/carlosallexandre/gostack-gobarber/internal/domain"
)

type AppointmentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAppointmentRepo(db *dbpg.DB) *AppointmentRepository {
	return &AppointmentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	query := `INSERT INTO appointments (id, requester_id, provider_id, scheduled_at, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.RequesterID, a.ProviderID, a.ScheduledAt, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		// 23505 on the partial unique index: the slot was grabbed by
		// a concurrent request between the availability check and here
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert appointment: %w", err)
	}

	return nil
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	query := `SELECT id, requester_id, provider_id, scheduled_at, canceled_at, reminded_at, created_at
			  FROM appointments
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}

	var a domain.Appointment
	if err = row.Scan(
		&a.ID, &a.RequesterID, &a.ProviderID,
		&a.ScheduledAt, &a.CanceledAt, &a.RemindedAt, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("scan appointment: %w", err)
	}

	return &a, nil
}

// Cancel sets canceled_at once; a second cancel does not overwrite it.
func (r *AppointmentRepository) Cancel(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE appointments
			  SET canceled_at = $2
			  WHERE id = $1 AND canceled_at IS NULL`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at)
	if err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cancel rows affected: %w", err)
	}
	if rows == 0 {
		a, err := r.GetByID(ctx, id)
		if err != nil {
			return domain.ErrAppointmentNotFound
		}
		if a.CanceledAt != nil {
			return domain.ErrAlreadyCancelled
		}
		return domain.ErrAppointmentNotFound
	}

	return nil
}

func (r *AppointmentRepository) FindActive(ctx context.Context, providerID string, scheduledAt time.Time) (*domain.Appointment, error) {
	query := `SELECT id, requester_id, provider_id, scheduled_at, canceled_at, reminded_at, created_at
			  FROM appointments
			  WHERE provider_id=$1 AND scheduled_at=$2 AND canceled_at IS NULL`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, providerID, scheduledAt)
	if err != nil {
		return nil, fmt.Errorf("find active appointment: %w", err)
	}

	var a domain.Appointment
	if err = row.Scan(
		&a.ID, &a.RequesterID, &a.ProviderID,
		&a.ScheduledAt, &a.CanceledAt, &a.RemindedAt, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("scan appointment: %w", err)
	}

	return &a, nil
}

func (r *AppointmentRepository) ListActive(ctx context.Context, requesterID string, page, pageSize int) ([]*domain.Appointment, error) {
	query := `SELECT id, requester_id, provider_id, scheduled_at, canceled_at, reminded_at, created_at
			  FROM appointments
			  WHERE requester_id = $1 AND canceled_at IS NULL
			  ORDER BY scheduled_at ASC
			  LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, requesterID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("list appointments by requester: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func (r *AppointmentRepository) ListByProvider(ctx context.Context, providerID string) ([]*domain.Appointment, error) {
	query := `SELECT id, requester_id, provider_id, scheduled_at, canceled_at, reminded_at, created_at
			  FROM appointments
			  WHERE provider_id = $1 AND canceled_at IS NULL
			  ORDER BY scheduled_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, providerID)
	if err != nil {
		return nil, fmt.Errorf("list appointments by provider: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func (r *AppointmentRepository) ListDueReminders(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	query := `SELECT id, requester_id, provider_id, scheduled_at, canceled_at, reminded_at, created_at
			  FROM appointments
			  WHERE canceled_at IS NULL
			    AND reminded_at IS NULL
			    AND scheduled_at > $1
			    AND scheduled_at <= $2
			  ORDER BY scheduled_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

func (r *AppointmentRepository) MarkReminded(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE appointments
			  SET reminded_at = $2
			  WHERE id = $1 AND reminded_at IS NULL`
	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, at); err != nil {
		return fmt.Errorf("mark appointment reminded: %w", err)
	}

	return nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	var res []*domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := rows.Scan(
			&a.ID, &a.RequesterID, &a.ProviderID,
			&a.ScheduledAt, &a.CanceledAt, &a.RemindedAt, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}
