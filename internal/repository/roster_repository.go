package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/resty-service/internal/domain"
)

// Querier is the subset of pgxpool.Pool the repository needs.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// RosterRepository reads the staff roster used to seed the dashboard.
type RosterRepository interface {
	List(ctx context.Context, filter RosterFilter) ([]domain.Staff, error)
}

// RosterFilter defines query params for roster listing.
type RosterFilter struct {
	Role   *domain.Role
	Active *bool
	Limit  int
}

type rosterRepository struct {
	db Querier
}

// NewRosterRepository instantiates the repository.
func NewRosterRepository(db Querier) RosterRepository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) List(ctx context.Context, filter RosterFilter) ([]domain.Staff, error) {
	query, args := buildRosterQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query roster: %w", err)
	}
	defer rows.Close()

	result := []domain.Staff{}
	for rows.Next() {
		var staff domain.Staff
		var role string
		if err := rows.Scan(
			&staff.ID,
			&staff.Name,
			&staff.Email,
			&role,
			&staff.Skills,
			&staff.Availability,
			&staff.WageRate,
			&staff.MaxHours,
			&staff.IsActive,
			&staff.CreatedAt,
			&staff.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan roster row: %w", err)
		}
		staff.Role = domain.Role(role)
		if !staff.Role.Valid() {
			return nil, fmt.Errorf("roster row %s: unknown role %q", staff.ID, role)
		}
		if staff.Skills == nil {
			staff.Skills = []string{}
		}
		result = append(result, staff)
	}
	return result, rows.Err()
}

func buildRosterQuery(filter RosterFilter) (string, []any) {
	query := `
        SELECT id, name, email, role, skills, availability, wage_rate::float8, max_hours, is_active, created_at, updated_at
        FROM roster_staff`
	args := []any{}
	clauses := []string{}

	if filter.Role != nil {
		args = append(args, string(*filter.Role))
		clauses = append(clauses, fmt.Sprintf("role=$%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("is_active=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at ASC, id ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	return query, args
}
