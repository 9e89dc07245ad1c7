package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
)

const backupVersion = "1.0"

// Backup формат файла резервной копии.
type Backup struct {
	Version   string           `json:"version"`
	Timestamp time.Time        `json:"timestamp"`
	Data      *domain.Snapshot `json:"data"`
}

type BackupService struct {
	uow      uow.UOW
	settings SettingsCache
}

func NewBackupService(u uow.UOW, settings SettingsCache) *BackupService {
	return &BackupService{uow: u, settings: settings}
}

// Dump выгружает все данные одной транзакцией. Если настройки еще не сохранялись,
// в копию попадают действующие настройки по умолчанию.
func (b *BackupService) Dump(ctx context.Context) (*Backup, error) {
	var snapshot *domain.Snapshot
	txErr := b.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, err := uow.GetAs[BackupRepository](tx, uow.RepositoryName(repoargs.BackupRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		snapshot, err = repo.Export(ctx)
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return nil, fmt.Errorf("dumping backup: %w", txErr)
	}
	if snapshot.Settings == nil {
		settings, err := b.settings.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("dumping backup: %w", err)
		}
		snapshot.Settings = settings
	}
	return &Backup{Version: backupVersion, Timestamp: time.Now().UTC(), Data: snapshot}, nil
}

// Restore заменяет все данные содержимым копии.
func (b *BackupService) Restore(ctx context.Context, raw []byte) error {
	var backup Backup
	if err := json.Unmarshal(raw, &backup); err != nil {
		return fmt.Errorf("restoring backup: %w: %s", domain.ErrInvalidBackup, err.Error())
	}
	if backup.Data == nil {
		return fmt.Errorf("restoring backup: %w", domain.ErrInvalidBackup)
	}
	if backup.Data.Users == nil {
		return fmt.Errorf("restoring backup: %w", domain.ErrCorruptBackup)
	}
	if backup.Data.Settings != nil {
		if err := validateSettings(backup.Data.Settings); err != nil {
			return fmt.Errorf("restoring backup: %w", err)
		}
	}

	txErr := b.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, err := uow.GetAs[BackupRepository](tx, uow.RepositoryName(repoargs.BackupRepoName))
		if err != nil {
			return err //nolint:wrapcheck
		}
		return repo.Import(ctx, backup.Data) //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("restoring backup: %w", txErr)
	}
	b.settings.Invalidate()
	return nil
}
