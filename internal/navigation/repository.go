package navigation

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/helloviza/frontend-hrms-sub002/internal/shared/errors"
)

// Repository loads menu configuration from Postgres. Menus are product
// config authored outside this engine; rows reference gates by name and are
// resolved through the registry on load.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a menu repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// LoadMenu reads all menu groups and their items in declared order. An empty
// configuration returns (nil, nil) so the caller can fall back to the
// built-in menu.
func (r *Repository) LoadMenu(ctx context.Context) ([]Group, error) {
	groupQuery := `
		SELECT id::text, slug, label, gate
		FROM console.menu_groups
		ORDER BY position, slug`

	rows, err := r.pool.Query(ctx, groupQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu groups")
	}
	defer rows.Close()

	var groups []Group
	index := map[string]int{}

	for rows.Next() {
		var id, slug, label, gate string
		if err := rows.Scan(&id, &slug, &label, &gate); err != nil {
			return nil, errors.Wrap(err, "failed to scan menu group")
		}
		index[id] = len(groups)
		groups = append(groups, Group{ID: slug, Label: label, Gate: GateByName(gate)})
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate menu groups")
	}
	if len(groups) == 0 {
		return nil, nil
	}

	itemQuery := `
		SELECT group_id::text, label, target, gate
		FROM console.menu_items
		ORDER BY position, label`

	itemRows, err := r.pool.Query(ctx, itemQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu items")
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var groupID, label, target, gate string
		if err := itemRows.Scan(&groupID, &label, &target, &gate); err != nil {
			return nil, errors.Wrap(err, "failed to scan menu item")
		}
		i, ok := index[groupID]
		if !ok {
			continue
		}
		item := Item{Label: label, Target: target}
		if gate != "" {
			item.Gate = GateByName(gate)
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate menu items")
	}

	return groups, nil
}

// SeedDefault inserts the built-in menu into an empty configuration store.
// A store that already holds groups is left untouched.
func (r *Repository) SeedDefault(ctx context.Context) error {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM console.menu_groups`).Scan(&count); err != nil {
		return errors.Wrap(err, "failed to count menu groups")
	}
	if count > 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin menu seed")
	}
	defer tx.Rollback(ctx)

	for gi, gc := range defaultMenuConfig {
		groupID := uuid.New().String()
		_, err := tx.Exec(ctx, `
			INSERT INTO console.menu_groups (id, slug, label, gate, position)
			VALUES ($1, $2, $3, $4, $5)`,
			groupID, gc.Slug, gc.Label, gc.Gate, gi,
		)
		if err != nil {
			return errors.Wrap(err, "failed to seed menu group")
		}

		for ii, ic := range gc.Items {
			_, err := tx.Exec(ctx, `
				INSERT INTO console.menu_items (id, group_id, label, target, gate, position)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				uuid.New().String(), groupID, ic.Label, ic.Target, ic.Gate, ii,
			)
			if err != nil {
				return errors.Wrap(err, "failed to seed menu item")
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit menu seed")
	}
	return nil
}
