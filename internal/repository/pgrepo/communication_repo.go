package pgrepo

import (
	"context"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const (
	announcementColumns = `id, created_at, title, message, type, audience, is_active`
	templateColumns     = `id, name, channel, subject, body, variables`
)

// CommunicationRepository хранит объявления и шаблоны сообщений.
type CommunicationRepository struct {
	db uow.DBTX
}

func NewCommunicationRepository(conn uow.DBTX) *CommunicationRepository {
	return &CommunicationRepository{db: conn}
}

func (c *CommunicationRepository) CreateAnnouncement(
	ctx context.Context,
	a domain.Announcement,
) (*domain.Announcement, error) {
	created, err := scanAnnouncement(c.db.QueryRow(ctx, `
		INSERT INTO announcements (title, message, type, audience, is_active) VALUES ($1, $2, $3, $4, $5)
		RETURNING `+announcementColumns, a.Title, a.Message, string(a.Type), string(a.Audience), a.IsActive))
	if err != nil {
		return nil, convertErr(err, "creating announcement")
	}
	return created, nil
}

// ListAnnouncements возвращает объявления, начиная с новых. Пустой audiences означает все аудитории.
func (c *CommunicationRepository) ListAnnouncements(
	ctx context.Context,
	audiences []domain.Audience,
	onlyActive bool,
) ([]domain.Announcement, error) {
	names := make([]string, len(audiences))
	for i, a := range audiences {
		names[i] = string(a)
	}
	rows, err := c.db.Query(ctx, `
		SELECT `+announcementColumns+` FROM announcements
		WHERE (cardinality($1::text[]) = 0 OR audience = ANY($1::text[])) AND (NOT $2 OR is_active)
		ORDER BY created_at DESC, id DESC`, names, onlyActive)
	if err != nil {
		return nil, convertErr(err, "listing announcements")
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Announcement, error) {
		a, scanErr := scanAnnouncement(row)
		if scanErr != nil {
			return domain.Announcement{}, scanErr
		}
		return *a, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning announcements")
	}
	return list, nil
}

func (c *CommunicationRepository) SetAnnouncementActive(
	ctx context.Context,
	id int64,
	active bool,
) (*domain.Announcement, error) {
	a, err := scanAnnouncement(c.db.QueryRow(ctx, `
		UPDATE announcements SET is_active = $2 WHERE id = $1
		RETURNING `+announcementColumns, id, active))
	if err != nil {
		return nil, convertErr(err, "toggling announcement %d", id)
	}
	return a, nil
}

func (c *CommunicationRepository) DeleteAnnouncement(ctx context.Context, id int64) error {
	tag, err := c.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting announcement %d", id)
	}
	return affectedOne(tag, "deleting announcement %d", id)
}

func (c *CommunicationRepository) CreateTemplate(ctx context.Context, t domain.Template) (*domain.Template, error) {
	vars := t.Variables
	if vars == nil {
		vars = []string{}
	}
	created, err := scanTemplate(c.db.QueryRow(ctx, `
		INSERT INTO templates (name, channel, subject, body, variables) VALUES ($1, $2, $3, $4, $5)
		RETURNING `+templateColumns, t.Name, string(t.Channel), t.Subject, t.Body, vars))
	if err != nil {
		return nil, convertErr(err, "creating template %s", t.Name)
	}
	return created, nil
}

func (c *CommunicationRepository) FindTemplate(ctx context.Context, id int64) (*domain.Template, error) {
	t, err := scanTemplate(c.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM templates WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding template %d", id)
	}
	return t, nil
}

func (c *CommunicationRepository) ListTemplates(ctx context.Context) ([]domain.Template, error) {
	rows, err := c.db.Query(ctx, `SELECT `+templateColumns+` FROM templates ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing templates")
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Template, error) {
		t, scanErr := scanTemplate(row)
		if scanErr != nil {
			return domain.Template{}, scanErr
		}
		return *t, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning templates")
	}
	return list, nil
}

func (c *CommunicationRepository) UpdateTemplate(ctx context.Context, t domain.Template) (*domain.Template, error) {
	vars := t.Variables
	if vars == nil {
		vars = []string{}
	}
	updated, err := scanTemplate(c.db.QueryRow(ctx, `
		UPDATE templates SET name = $2, channel = $3, subject = $4, body = $5, variables = $6 WHERE id = $1
		RETURNING `+templateColumns, t.ID, t.Name, string(t.Channel), t.Subject, t.Body, vars))
	if err != nil {
		return nil, convertErr(err, "updating template %d", t.ID)
	}
	return updated, nil
}

func (c *CommunicationRepository) DeleteTemplate(ctx context.Context, id int64) error {
	tag, err := c.db.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting template %d", id)
	}
	return affectedOne(tag, "deleting template %d", id)
}

func scanAnnouncement(row pgx.Row) (*domain.Announcement, error) {
	var (
		a        domain.Announcement
		aType    string
		audience string
	)
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.Title, &a.Message, &aType, &audience, &a.IsActive); err != nil {
		return nil, err //nolint:wrapcheck
	}
	a.Type = domain.AnnouncementType(aType)
	a.Audience = domain.Audience(audience)
	return &a, nil
}

func scanTemplate(row pgx.Row) (*domain.Template, error) {
	var (
		t       domain.Template
		channel string
	)
	if err := row.Scan(&t.ID, &t.Name, &channel, &t.Subject, &t.Body, &t.Variables); err != nil {
		return nil, err //nolint:wrapcheck
	}
	t.Channel = domain.Channel(channel)
	return &t, nil
}
