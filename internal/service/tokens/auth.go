package tokens

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/fsdevblog/jadanpay/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrInvalidClaims = errors.New("invalid claims")
)

// Kind тип учетной записи владельца токена.
type Kind string

const (
	KindUser  Kind = "user"
	KindStaff Kind = "staff"
)

type UserClaims struct {
	jwt.RegisteredClaims
	ID          int64
	Kind        Kind
	Role        string
	Permissions []string
}

// Can сообщает, есть ли у владельца токена право permission.
func (c *UserClaims) Can(permission string) bool {
	return slices.Contains(c.Permissions, permission)
}

// GenerateUserJWT токен клиента. Администратор получает все права панели управления.
func GenerateUserJWT(id int64, role domain.UserRole, expire time.Duration, key []byte) (string, error) {
	var permissions []string
	if role == domain.RoleAdmin {
		permissions = slices.Clone(domain.AllPermissions)
	}
	token, err := generateJWT(newClaims(id, KindUser, string(role), permissions, expire), key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %s", err.Error())
	}
	return token, nil
}

// GenerateStaffJWT токен сотрудника с правами его роли.
func GenerateStaffJWT(id int64, role string, permissions []string, expire time.Duration, key []byte) (string, error) {
	token, err := generateJWT(newClaims(id, KindStaff, role, permissions, expire), key)
	if err != nil {
		return "", fmt.Errorf("generating staff jwt token: %s", err.Error())
	}
	return token, nil
}

func ValidateUserJWT(tokenString string, key []byte) (*UserClaims, error) {
	token, err := validateJWT(tokenString, new(UserClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating user jwt token: %w", err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || (claims.Kind != KindUser && claims.Kind != KindStaff) {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

func newClaims(id int64, kind Kind, role string, permissions []string, expire time.Duration) UserClaims {
	return UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		ID:          id,
		Kind:        kind,
		Role:        role,
		Permissions: permissions,
	}
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
