package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
)

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// updateSet collects "column = $n" pairs for partial updates.
type updateSet struct {
	sets   []string
	args   []interface{}
	guards []string
}

func (u *updateSet) add(column string, value interface{}) {
	u.args = append(u.args, value)
	u.sets = append(u.sets, fmt.Sprintf("%s = $%d", column, len(u.args)))
}

// guard adds an extra equality predicate next to the id.
func (u *updateSet) guard(column string, value interface{}) {
	u.args = append(u.args, value)
	u.guards = append(u.guards, fmt.Sprintf("%s = $%d", column, len(u.args)))
}

func (u *updateSet) empty() bool {
	return len(u.sets) == 0
}

// build appends updated_at and the id predicate.
func (u *updateSet) build(table string, id uuid.UUID, returning string) (string, []interface{}) {
	u.add("updated_at", time.Now().UTC())
	args := append(u.args, id)

	where := fmt.Sprintf("id = $%d", len(args))
	for _, g := range u.guards {
		where += " AND " + g
	}

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s
		WHERE %s
		RETURNING %s
	`, table, strings.Join(u.sets, ", "), where, returning)

	return query, args
}
