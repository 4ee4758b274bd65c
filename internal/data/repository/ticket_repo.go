package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mosqueradvd/cinema-monorepo/internal/data/entity"
	"github.com/mosqueradvd/cinema-monorepo/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// Purchase atomically issues a ticket for the showtime if the
	// hall's capacity has not been reached. Returns ErrNotFound when
	// the showtime does not exist and ErrCapacityReached when the
	// hall is full.
	Purchase(ctx context.Context, showtimeID int64) (*entity.Ticket, error)
	CountByShowtimeID(ctx context.Context, showtimeID int64) (int64, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

// Purchase runs the check-then-insert sequence inside a single
// transaction. The showtime row is locked with FOR UPDATE, so
// concurrent purchases for the same showtime serialize on that row
// while purchases for other showtimes proceed unblocked. If the
// context is cancelled before commit the transaction rolls back and
// no ticket exists.
func (r *ticketRepository) Purchase(ctx context.Context, showtimeID int64) (*entity.Ticket, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin purchase transaction",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
		)
		return nil, fmt.Errorf("begin purchase: %w", err)
	}
	defer tx.Rollback(ctx)

	var capacity int
	err = tx.QueryRow(ctx, `
		SELECT h.capacity
		FROM showtimes s
		JOIN halls h ON h.id = s.hall_id
		WHERE s.id = $1
		FOR UPDATE OF s
	`, showtimeID).Scan(&capacity)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to lock showtime for purchase",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
		)
		return nil, fmt.Errorf("lock showtime %d: %w", showtimeID, err)
	}

	var sold int64
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM tickets WHERE showtime_id = $1`,
		showtimeID,
	).Scan(&sold)
	if err != nil {
		r.log.Error("Failed to count tickets for purchase",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
		)
		return nil, fmt.Errorf("count tickets for showtime %d: %w", showtimeID, err)
	}

	if sold >= int64(capacity) {
		return nil, ErrCapacityReached
	}

	ticket := &entity.Ticket{
		ShowtimeID: showtimeID,
		CreatedAt:  time.Now(),
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO tickets (showtime_id, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, ticket.ShowtimeID, ticket.CreatedAt).Scan(&ticket.ID)
	if err != nil {
		r.log.Error("Failed to insert ticket",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
		)
		return nil, fmt.Errorf("insert ticket for showtime %d: %w", showtimeID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit purchase",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
		)
		return nil, fmt.Errorf("commit purchase for showtime %d: %w", showtimeID, err)
	}

	return ticket, nil
}

func (r *ticketRepository) CountByShowtimeID(ctx context.Context, showtimeID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE showtime_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, showtimeID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count tickets",
			zap.Error(err),
			zap.Int64("showtime_id", showtimeID),
		)
		return 0, fmt.Errorf("count tickets for showtime %d: %w", showtimeID, err)
	}

	return count, nil
}
