package pgrepo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/pkg/uow"
)

// SettingsRepository хранит глобальные настройки одной JSONB строкой.
type SettingsRepository struct {
	db uow.DBTX
}

func NewSettingsRepository(conn uow.DBTX) *SettingsRepository {
	return &SettingsRepository{db: conn}
}

// Get возвращает сохраненные настройки или domain.ErrRecordNotFound, если их еще нет.
func (s *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	var raw []byte
	if err := s.db.QueryRow(ctx, `SELECT data FROM settings WHERE id = 1`).Scan(&raw); err != nil {
		return nil, convertErr(err, "loading settings")
	}
	var settings domain.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("[repository/decoding settings] %w: %s", domain.ErrUnknown, err.Error())
	}
	return &settings, nil
}

func (s *SettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO settings (id, data) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = now()`, raw)
	if err != nil {
		return convertErr(err, "saving settings")
	}
	return nil
}
