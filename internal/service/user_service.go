package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/fsdevblog/jadanpay/internal/money"
	"github.com/fsdevblog/jadanpay/internal/repository/repoargs"
	"github.com/fsdevblog/jadanpay/internal/service/tokens"
	"github.com/fsdevblog/jadanpay/pkg/uow"
)

const (
	JWTTokenExpire = 24 * time.Hour

	otpLength          = 4
	topReferrersLimit  = 10
	referralCodeTries  = 5
	defaultIPAddress   = "127.0.0.1"
	defaultOS          = "Web Browser"
	welcomeTitle       = "Welcome to JadanPay!"
	welcomeMessage     = "We are glad to have you onboard. Fund your wallet to get started."
	referralBonusTitle = "Referral Bonus Earned!"
)

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	settings       SettingsReader
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, settings SettingsReader, jwtTokenSecret []byte) (*UserService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		settings:       settings,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Name         string
	Email        string
	Phone        string
	OTP          string
	ReferralCode string
	IPAddress    string
	OS           string
}

// Register создает юзера и выдает jwt токен. Если программа рефералов включена и код принадлежит юзеру,
// пригласившему начисляется бонус. Возвращает 3 значения: созданный юзер, токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	if err := verifyOTP(args.OTP); err != nil {
		return nil, "", fmt.Errorf("registering user: %w", err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("registering user: %w", err)
	}

	var user *domain.User
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repos, reposErr := walletRepos(tx)
		if reposErr != nil {
			return reposErr
		}
		if takenErr := ensureUnique(c, repos.users, args.Email, args.Phone, 0); takenErr != nil {
			return takenErr
		}

		var referrer *domain.User
		if code := strings.TrimSpace(args.ReferralCode); code != "" && settings.EnableReferral {
			found, findErr := repos.users.FindByReferralCode(c, code)
			if findErr != nil && !errors.Is(findErr, domain.ErrRecordNotFound) {
				return findErr //nolint:wrapcheck
			}
			referrer = found
		}

		referralCode, codeErr := freeReferralCode(c, repos.users, args.Name)
		if codeErr != nil {
			return codeErr
		}

		createArgs := repoargs.CreateUser{
			Name:         strings.TrimSpace(args.Name),
			Email:        strings.TrimSpace(args.Email),
			Phone:        strings.TrimSpace(args.Phone),
			Role:         domain.RoleUser,
			WalletNumber: newWalletNumber(),
			ReferralCode: referralCode,
			IPAddress:    valueOr(args.IPAddress, defaultIPAddress),
			OS:           valueOr(args.OS, defaultOS),
		}
		if referrer != nil {
			createArgs.ReferredBy = &referrer.ID
		}

		var createErr error
		if user, createErr = repos.users.CreateUser(c, createArgs); createErr != nil {
			return createErr //nolint:wrapcheck
		}

		if referrer != nil {
			if bonusErr := rewardReferrer(c, repos, referrer.ID, settings); bonusErr != nil {
				return bonusErr
			}
		}
		return notify(c, repos.notifications, user.ID, welcomeTitle, welcomeMessage, domain.NotificationSuccess)
	})
	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}

	token, err := tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
	if err != nil {
		return nil, "", fmt.Errorf("registering user: %w", err)
	}
	return user, token, nil
}

// rewardReferrer начисляет бонус пригласившему. Бонус копится на отдельном балансе, поэтому
// основной баланс в записи транзакции не меняется.
func rewardReferrer(ctx context.Context, repos *txRepos, referrerID int64, settings *domain.Settings) error {
	referrer, err := repos.users.ApplyBalanceChange(ctx, referrerID, repoargs.BalanceChange{
		BonusBalance:  settings.ReferralReward,
		ReferralCount: 1,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}
	if _, err = repos.transactions.Create(ctx, repoargs.CreateTransaction{
		UserID:          referrer.ID,
		Type:            domain.TransactionReferralBonus,
		Amount:          settings.ReferralReward,
		Status:          domain.TransactionStatusSuccess,
		Reference:       newReference("REF-BONUS", bonusRefDigits),
		PreviousBalance: referrer.Balance,
		NewBalance:      referrer.Balance,
	}); err != nil {
		return err //nolint:wrapcheck
	}
	message := fmt.Sprintf("You earned %s because a friend used your code!", money.Naira(settings.ReferralReward))
	return notify(ctx, repos.notifications, referrer.ID, referralBonusTitle, message, domain.NotificationSuccess)
}

type LoginUserArgs struct {
	Email     string
	OTP       string
	IPAddress string
	OS        string
}

// Login вход по email и одноразовому коду. Заблокированные юзеры не допускаются.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	if err := verifyOTP(args.OTP); err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	user, err := s.userRepo.FindByEmail(ctx, strings.TrimSpace(args.Email))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("login: %w", domain.ErrUserNotFound)
		}
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if !user.IsActive() {
		return nil, "", fmt.Errorf("login: %w", domain.ErrAccountBlocked)
	}

	login := repoargs.UserLogin{
		At:        time.Now(),
		IPAddress: valueOr(args.IPAddress, user.IPAddress),
		OS:        valueOr(args.OS, user.OS),
	}
	if err = s.userRepo.TouchLogin(ctx, user.ID, login); err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	user.LastLoginAt, user.IPAddress, user.OS = &login.At, login.IPAddress, login.OS

	token, err := tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	return user, token, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return user, nil
}

type UpdateProfileArgs struct {
	Name      string
	Phone     string
	AvatarURL string
}

// UpdateProfile изменение профиля самим юзером. Email, роль и верификация не меняются.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, args UpdateProfileArgs) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	upd := repoargs.UpdateUser{
		Name:       valueOr(strings.TrimSpace(args.Name), user.Name),
		Email:      user.Email,
		Phone:      valueOr(strings.TrimSpace(args.Phone), user.Phone),
		Role:       user.Role,
		IsVerified: user.IsVerified,
		AvatarURL:  valueOr(args.AvatarURL, user.AvatarURL),
	}
	if err = ensureUnique(ctx, s.userRepo, "", upd.Phone, id); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	updated, err := s.userRepo.UpdateUser(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}
	return updated, nil
}

// List поиск юзеров по подстроке имени, email или телефона. Пустой search возвращает всех.
func (s *UserService) List(ctx context.Context, search string) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return users, nil
}

func (s *UserService) UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) (*domain.User, error) {
	user, err := s.userRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("updating user status: %w", err)
	}
	return user, nil
}

type AdminUpdateUserArgs struct {
	Name       string
	Email      string
	Phone      string
	Role       domain.UserRole
	IsVerified bool
}

// Update изменение юзера администратором.
func (s *UserService) Update(ctx context.Context, id int64, args AdminUpdateUserArgs) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	upd := repoargs.UpdateUser{
		Name:       valueOr(strings.TrimSpace(args.Name), user.Name),
		Email:      valueOr(strings.TrimSpace(args.Email), user.Email),
		Phone:      valueOr(strings.TrimSpace(args.Phone), user.Phone),
		Role:       valueOr(args.Role, user.Role),
		IsVerified: args.IsVerified,
		AvatarURL:  user.AvatarURL,
	}
	if err = ensureUnique(ctx, s.userRepo, upd.Email, upd.Phone, id); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	updated, err := s.userRepo.UpdateUser(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return updated, nil
}

// Delete удаляет юзера. Его транзакции остаются в журнале.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

// TopReferrers десять юзеров с наибольшим числом приглашенных.
func (s *UserService) TopReferrers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.TopReferrers(ctx, topReferrersLimit)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return users, nil
}

func freeReferralCode(ctx context.Context, repo UserRepository, name string) (string, error) {
	var code string
	for range referralCodeTries {
		code = newReferralCode(name)
		_, err := repo.FindByReferralCode(ctx, code)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err //nolint:wrapcheck
		}
	}
	// все попытки заняты, уникальный индекс отклонит вставку при настоящем конфликте.
	return code, nil
}

// ensureUnique проверяет, что email и телефон не принадлежат другому юзеру. Пустое значение не проверяется.
func ensureUnique(ctx context.Context, repo UserRepository, email, phone string, exceptID int64) error {
	if email != "" {
		found, err := repo.FindByEmail(ctx, email)
		if err == nil && found.ID != exceptID {
			return domain.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
			return err //nolint:wrapcheck
		}
	}
	if phone != "" {
		found, err := repo.FindByPhone(ctx, phone)
		if err == nil && found.ID != exceptID {
			return domain.ErrPhoneTaken
		}
		if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
			return err //nolint:wrapcheck
		}
	}
	return nil
}

// verifyOTP заглушка проверки одноразового кода: принимается любой код из 4 цифр.
func verifyOTP(otp string) error {
	if len(otp) != otpLength {
		return domain.ErrInvalidOTP
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			return domain.ErrInvalidOTP
		}
	}
	return nil
}

func valueOr[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}
	return value
}
