package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pacsflow/pacsflow/internal/config"
	ierr "github.com/pacsflow/pacsflow/internal/errors"
)

// Claims is the validated identity carried by an API token.
type Claims struct {
	UserID          string
	TenantSubdomain string
}

// Service issues and validates API tokens.
type Service interface {
	GenerateToken(userID, tenantSubdomain string) (string, error)
	ValidateToken(token string) (*Claims, error)
}

type service struct {
	authConfig config.AuthConfig
}

func NewService(cfg *config.Configuration) Service {
	return &service{
		authConfig: cfg.Auth,
	}
}

func (s *service) GenerateToken(userID, tenantSubdomain string) (string, error) {
	// 30 day expiry matches the console session length
	expiration := time.Now().Add(30 * 24 * time.Hour)

	claims := jwt.MapClaims{
		"user_id":          userID,
		"tenant_subdomain": tenantSubdomain,
		"exp":              expiration.Unix(),
		"iat":              time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.authConfig.Secret))
}

func (s *service) ValidateToken(token string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHint(fmt.Sprintf("unexpected signing method: %v", token.Header["alg"])).
				Mark(ierr.ErrPermissionDenied)
		}
		return []byte(s.authConfig.Secret), nil
	})

	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrPermissionDenied)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrPermissionDenied)
	}

	userID, userOk := claims["user_id"].(string)
	if !userOk {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrPermissionDenied)
	}

	tenantSubdomain, _ := claims["tenant_subdomain"].(string)

	return &Claims{UserID: userID, TenantSubdomain: tenantSubdomain}, nil
}
