package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/solaceapp/solace/internal/db"
	"github.com/solaceapp/solace/internal/importer"
	"github.com/solaceapp/solace/internal/repository"
)

type backupService struct {
	entries  repository.EntryRepo
	checkins repository.CheckinRepo
	uow      db.UnitOfWork
}

func NewBackupService(entries repository.EntryRepo, checkins repository.CheckinRepo, uow db.UnitOfWork) BackupService {
	return &backupService{entries: entries, checkins: checkins, uow: uow}
}

func (s *backupService) Export(ctx context.Context) (*importer.BackupSchema, error) {
	entries, err := s.entries.List(ctx, true)
	if err != nil {
		return nil, err
	}
	checkins, err := s.checkins.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return importer.FromDomain(entries, checkins), nil
}

func (s *backupService) Import(ctx context.Context, schema *importer.BackupSchema) (ImportStats, error) {
	if errs := importer.ValidateBackup(schema); len(errs) > 0 {
		return ImportStats{}, fmt.Errorf("invalid backup: %w", errors.Join(errs...))
	}

	entries, checkins, err := importer.ToDomain(schema)
	if err != nil {
		return ImportStats{}, err
	}

	// The whole restore lands in one transaction, preserving the backup's
	// IDs and timestamps.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		entryRepo := repository.NewSQLiteEntryRepo(tx)
		for _, e := range entries {
			if err := entryRepo.Create(ctx, e); err != nil {
				return err
			}
		}
		checkinRepo := repository.NewSQLiteCheckinRepo(tx)
		for _, c := range checkins {
			if err := checkinRepo.Create(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return ImportStats{}, err
	}

	return ImportStats{Entries: len(entries), Checkins: len(checkins)}, nil
}
