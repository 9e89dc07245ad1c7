package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/pkg/uow"
)

// placeholderRe переменная шаблона вида {name}.
var placeholderRe = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// CommunicationService объявления, шаблоны сообщений и рассылки.
type CommunicationService struct {
	uow               uow.UOW
	communicationRepo CommunicationRepository
	userRepo          UserRepository
}

func NewCommunicationService(u uow.UOW) (*CommunicationService, error) {
	commRepo, err := uow.GetRepositoryAs[CommunicationRepository](u,
		uow.RepositoryName(repoargs.CommunicationRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CommunicationService{uow: u, communicationRepo: commRepo, userRepo: userRepo}, nil
}

// Announcements все объявления для админки.
func (c *CommunicationService) Announcements(ctx context.Context) ([]domain.Announcement, error) {
	list, err := c.communicationRepo.ListAnnouncements(ctx, nil, false)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return list, nil
}

// ActiveAnnouncements активные объявления, видимые пользователю с ролью role.
func (c *CommunicationService) ActiveAnnouncements(
	ctx context.Context,
	role domain.UserRole,
) ([]domain.Announcement, error) {
	list, err := c.communicationRepo.ListAnnouncements(ctx, domain.AudiencesFor(role), true)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return list, nil
}

func (c *CommunicationService) AddAnnouncement(
	ctx context.Context,
	a domain.Announcement,
) (*domain.Announcement, error) {
	if a.Type == "" {
		a.Type = domain.AnnouncementInfo
	}
	if a.Audience == "" {
		a.Audience = domain.AudienceAll
	}
	created, err := c.communicationRepo.CreateAnnouncement(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("adding announcement: %w", err)
	}
	return created, nil
}

func (c *CommunicationService) ToggleAnnouncement(
	ctx context.Context,
	id int64,
	active bool,
) (*domain.Announcement, error) {
	a, err := c.communicationRepo.SetAnnouncementActive(ctx, id, active)
	if err != nil {
		return nil, fmt.Errorf("toggling announcement: %w", err)
	}
	return a, nil
}

func (c *CommunicationService) DeleteAnnouncement(ctx context.Context, id int64) error {
	if err := c.communicationRepo.DeleteAnnouncement(ctx, id); err != nil {
		return fmt.Errorf("deleting announcement: %w", err)
	}
	return nil
}

func (c *CommunicationService) Templates(ctx context.Context) ([]domain.Template, error) {
	list, err := c.communicationRepo.ListTemplates(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return list, nil
}

// SaveTemplate создает шаблон при нулевом ID, иначе обновляет существующий.
// Список переменных вычисляется по плейсхолдерам темы и текста.
func (c *CommunicationService) SaveTemplate(ctx context.Context, t domain.Template) (*domain.Template, error) {
	if t.Channel == "" {
		t.Channel = domain.ChannelEmail
	}
	t.Variables = templateVariables(t.Subject + " " + t.Body)

	var (
		saved *domain.Template
		err   error
	)
	if t.ID == 0 {
		saved, err = c.communicationRepo.CreateTemplate(ctx, t)
	} else {
		saved, err = c.communicationRepo.UpdateTemplate(ctx, t)
	}
	if err != nil {
		return nil, fmt.Errorf("saving template: %w", err)
	}
	return saved, nil
}

func (c *CommunicationService) DeleteTemplate(ctx context.Context, id int64) error {
	if err := c.communicationRepo.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	return nil
}

// Rendered готовое сообщение по шаблону.
type Rendered struct {
	Channel domain.Channel `json:"channel"`
	Subject string         `json:"subject,omitempty"`
	Body    string         `json:"body"`
}

// RenderTemplate подставляет значения vars в плейсхолдеры шаблона.
// Если для плейсхолдера нет значения, возвращается ErrTemplateVariableMissing.
func (c *CommunicationService) RenderTemplate(
	ctx context.Context,
	id int64,
	vars map[string]string,
) (*Rendered, error) {
	t, err := c.communicationRepo.FindTemplate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("rendering template: %w", err)
	}
	subject, err := render(t.Subject, vars)
	if err != nil {
		return nil, fmt.Errorf("rendering template %d subject: %w", id, err)
	}
	body, err := render(t.Body, vars)
	if err != nil {
		return nil, fmt.Errorf("rendering template %d body: %w", id, err)
	}
	return &Rendered{Channel: t.Channel, Subject: subject, Body: body}, nil
}

// Broadcast создает in-app уведомление каждому пользователю аудитории. Возвращает число
// доставленных уведомлений.
func (c *CommunicationService) Broadcast(
	ctx context.Context,
	audience domain.Audience,
	title, message string,
	t domain.NotificationType,
) (int, error) {
	if t == "" {
		t = domain.NotificationInfo
	}
	users, err := c.userRepo.ListByRoles(ctx, audienceRoles(audience))
	if err != nil {
		return 0, fmt.Errorf("broadcast: %w", err)
	}

	args := make([]repoargs.CreateNotification, len(users))
	for i, u := range users {
		args[i] = repoargs.CreateNotification{UserID: u.ID, Title: title, Message: message, Type: t}
	}

	var delivered int
	txErr := c.uow.Do(ctx, func(ctx context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[NotificationRepository](tx, uow.RepositoryName(repoargs.NotificationRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		var batchErr error
		createErr := repo.BatchCreate(ctx, args, func(_ int, e error) {
			if e != nil {
				batchErr = errors.Join(batchErr, e)
				return
			}
			delivered++
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		return batchErr
	})
	if txErr != nil {
		return 0, fmt.Errorf("broadcast: %w", txErr)
	}
	return delivered, nil
}

func audienceRoles(audience domain.Audience) []domain.UserRole {
	switch audience {
	case domain.AudienceResellers:
		return []domain.UserRole{domain.RoleReseller}
	case domain.AudienceStaff:
		return []domain.UserRole{domain.RoleStaff, domain.RoleAdmin}
	default:
		return []domain.UserRole{domain.RoleUser, domain.RoleReseller, domain.RoleStaff, domain.RoleAdmin}
	}
}

func templateVariables(text string) []string {
	vars := make([]string, 0)
	seen := make(map[string]struct{})
	for _, m := range placeholderRe.FindAllStringSubmatch(text, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		vars = append(vars, m[1])
	}
	return vars
}

func render(text string, vars map[string]string) (string, error) {
	var missing []string
	out := placeholderRe.ReplaceAllStringFunc(text, func(ph string) string {
		name := ph[1 : len(ph)-1]
		v, ok := vars[name]
		if !ok {
			missing = append(missing, name)
			return ph
		}
		return v
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrTemplateVariableMissing, strings.Join(missing, ", "))
	}
	return out, nil
}
