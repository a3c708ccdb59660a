package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tangbing-xm/tweet-feeds/internal/domain"
)

// RosterAccount pairs a tracked handle with the vendor slug it belongs to.
type RosterAccount struct {
	VendorSlug  string
	Handle      string
	DisplayName string
}

// Roster is the static vendor/account reference data applied by the seeder.
type Roster struct {
	Vendors  []domain.Vendor
	Accounts []RosterAccount
}

// SeedService applies the roster idempotently. Vendors and accounts are
// upserted in one transaction so the accounts table never references a
// vendor that failed to land.
type SeedService struct {
	vendors   VendorStore
	accounts  AccountStore
	txManager TransactionManager
	logger    *slog.Logger

	now func() time.Time
}

func NewSeedService(vendors VendorStore, accounts AccountStore, txManager TransactionManager, logger *slog.Logger) *SeedService {
	return &SeedService{
		vendors:   vendors,
		accounts:  accounts,
		txManager: txManager,
		logger:    logger.With("component", "seed"),
		now:       time.Now,
	}
}

func (s *SeedService) Seed(ctx context.Context, roster Roster) error {
	now := s.now()

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.vendors.UpsertBatch(txCtx, roster.Vendors); err != nil {
			return fmt.Errorf("upsert vendors: %w", err)
		}

		ids, err := s.vendors.IDsBySlug(txCtx)
		if err != nil {
			return fmt.Errorf("resolve vendor ids: %w", err)
		}

		seen := make(map[string]struct{}, len(roster.Accounts))
		accounts := make([]domain.Account, 0, len(roster.Accounts))
		for _, a := range roster.Accounts {
			if _, dup := seen[a.Handle]; dup {
				continue
			}
			seen[a.Handle] = struct{}{}

			vendorID, ok := ids[a.VendorSlug]
			if !ok {
				return fmt.Errorf("unknown vendor slug %q for account %q", a.VendorSlug, a.Handle)
			}

			account := domain.Account{
				VendorID:  vendorID,
				Handle:    a.Handle,
				IsActive:  true,
				UpdatedAt: now,
			}
			if a.DisplayName != "" {
				name := a.DisplayName
				account.DisplayName = &name
			}
			accounts = append(accounts, account)
		}

		if err := s.accounts.UpsertBatch(txCtx, accounts); err != nil {
			return fmt.Errorf("upsert accounts: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("seed complete",
		"vendors", len(roster.Vendors),
		"accounts", len(roster.Accounts),
	)
	return nil
}
