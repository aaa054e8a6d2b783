package persistence

import (
	"context"
	stderrors "errors"
	"time"

	"salesflow-backend/internal/database/models"
	"salesflow-backend/internal/errors"
	"salesflow-backend/internal/logger"
	"salesflow-backend/internal/sales"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Postgres confirms store writes against a Postgres database through GORM
type Postgres struct {
	db     *gorm.DB
	logger *logger.Logger
}

var _ Collaborator = (*Postgres)(nil)

// NewPostgres creates a Postgres collaborator
func NewPostgres(db *gorm.DB, log *logger.Logger) *Postgres {
	return &Postgres{db: db, logger: log}
}

// FetchReps returns all sales reps and teams
func (p *Postgres) FetchReps(ctx context.Context) ([]sales.SalesRep, error) {
	var recs []models.SalesRepRecord
	if err := p.db.WithContext(ctx).Order("id asc").Find(&recs).Error; err != nil {
		return nil, errors.NewRemoteError("fetch reps", err)
	}
	reps := make([]sales.SalesRep, 0, len(recs))
	for _, rec := range recs {
		rep, err := recordToRep(rec)
		if err != nil {
			return nil, errors.NewRemoteError("fetch reps", err)
		}
		reps = append(reps, rep)
	}
	return reps, nil
}

// FetchDeals returns all deals ordered by last update, newest first
func (p *Postgres) FetchDeals(ctx context.Context) ([]sales.Deal, error) {
	var recs []models.DealRecord
	if err := p.db.WithContext(ctx).Order("last_updated desc").Find(&recs).Error; err != nil {
		return nil, errors.NewRemoteError("fetch deals", err)
	}
	deals := make([]sales.Deal, 0, len(recs))
	for _, rec := range recs {
		deal, err := recordToDeal(rec)
		if err != nil {
			return nil, errors.NewRemoteError("fetch deals", err)
		}
		deals = append(deals, deal)
	}
	return deals, nil
}

// CreateDeal inserts the deal with a server-assigned id and timestamp and
// returns the persisted form
func (p *Postgres) CreateDeal(ctx context.Context, deal sales.Deal) (sales.Deal, error) {
	deal.ID = uuid.NewString()
	deal.LastUpdated = time.Now().UTC()

	rec, err := dealToRecord(deal)
	if err != nil {
		return sales.Deal{}, errors.NewRemoteError("create deal", err)
	}
	if err := p.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return sales.Deal{}, errors.NewRemoteError("create deal", err)
	}

	p.logger.WithField("deal_id", deal.ID).Debug("Deal persisted")
	return deal, nil
}

// UpdateDeal saves the full state of an existing deal
func (p *Postgres) UpdateDeal(ctx context.Context, deal sales.Deal) error {
	rec, err := dealToRecord(deal)
	if err != nil {
		return errors.NewRemoteError("update deal", err)
	}

	result := p.db.WithContext(ctx).Model(&models.DealRecord{}).
		Where("id = ?", rec.ID).
		Select("*").Omit("id").
		Updates(&rec)
	if result.Error != nil {
		return errors.NewRemoteError("update deal", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewRemoteError("update deal", errors.ErrDealNotFound)
	}
	return nil
}

// DeleteDeal removes a deal
func (p *Postgres) DeleteDeal(ctx context.Context, id string) error {
	result := p.db.WithContext(ctx).Delete(&models.DealRecord{}, "id = ?", id)
	if result.Error != nil {
		return errors.NewRemoteError("delete deal", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewRemoteError("delete deal", errors.ErrDealNotFound)
	}
	return nil
}

// UpdateRepQuota persists a quota change for a rep
func (p *Postgres) UpdateRepQuota(ctx context.Context, repID string, quota float64) error {
	result := p.db.WithContext(ctx).Model(&models.SalesRepRecord{}).
		Where("id = ?", repID).
		Update("quota", quota)
	if result.Error != nil {
		return errors.NewRemoteError("update quota", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewRemoteError("update quota", errors.ErrRepNotFound)
	}
	return nil
}

// SeedIfEmpty loads the built-in dataset into an empty database so a fresh
// deployment starts with the demo pipeline
func (p *Postgres) SeedIfEmpty(ctx context.Context) error {
	var count int64
	if err := p.db.WithContext(ctx).Model(&models.SalesRepRecord{}).Count(&count).Error; err != nil {
		return errors.NewRemoteError("seed check", err)
	}
	if count > 0 {
		return nil
	}

	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rep := range sales.SeedReps() {
			rec, err := repToRecord(rep)
			if err != nil {
				return err
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		for _, deal := range sales.SeedDeals() {
			rec, err := dealToRecord(deal)
			if err != nil {
				return err
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.NewRemoteError("seed", err)
	}

	p.logger.Info("Seeded empty database with demo pipeline")
	return nil
}

// IsNotFound reports whether a collaborator error was a missing-row failure
func IsNotFound(err error) bool {
	return errors.IsNotFound(err) || stderrors.Is(err, gorm.ErrRecordNotFound)
}
