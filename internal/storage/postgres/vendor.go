package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/tangbing-xm/tweet-feeds/internal/domain"
)

type VendorStore struct {
	db *sqlx.DB
}

func NewVendorStore(db *sqlx.DB) *VendorStore {
	return &VendorStore{db: db}
}

// List returns the vendor roster in display order.
func (s *VendorStore) List(ctx context.Context) ([]domain.Vendor, error) {
	query := `
		SELECT id, slug, name_en, name_zh, sort_order
		FROM vendors
		ORDER BY sort_order, slug`

	var vendors []domain.Vendor
	err := s.db.SelectContext(ctx, &vendors, query)
	return vendors, err
}

// IDsBySlug maps vendor slugs to row ids, seeing any transaction in ctx.
func (s *VendorStore) IDsBySlug(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		ID   int64  `db:"id"`
		Slug string `db:"slug"`
	}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		"SELECT id, slug FROM vendors")
	if err != nil {
		return nil, err
	}

	ids := make(map[string]int64, len(rows))
	for _, r := range rows {
		ids[r.Slug] = r.ID
	}
	return ids, nil
}

// UpsertBatch writes the seeded vendor roster keyed by slug.
func (s *VendorStore) UpsertBatch(ctx context.Context, vendors []domain.Vendor) error {
	if len(vendors) == 0 {
		return nil
	}

	query := `
		INSERT INTO vendors (slug, name_en, name_zh, sort_order)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET
			name_en = EXCLUDED.name_en,
			name_zh = EXCLUDED.name_zh,
			sort_order = EXCLUDED.sort_order`

	exec := GetExecutor(ctx, s.db)
	for _, v := range vendors {
		if _, err := exec.ExecContext(ctx, query,
			v.Slug, v.NameEn, v.NameZh, v.SortOrder,
		); err != nil {
			return err
		}
	}
	return nil
}
