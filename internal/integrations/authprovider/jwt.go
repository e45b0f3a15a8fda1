package authprovider

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// JWTVerifier локальная проверка HS256 токенов общим секретом проекта
type JWTVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier issuer и audience проверяются, только если заданы
func NewJWTVerifier(secret, issuer, audience string) *JWTVerifier {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &JWTVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

// Verify проверяет токен и возвращает личность пользователя
func (v *JWTVerifier) Verify(_ context.Context, token string) (*domain.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	parsed, err := v.parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return identityFrom(claims.Subject, claims.Email, claims.UserMetadata, claims.AppMetadata)
}

func identityFrom(subject, email string, userMeta, appMeta map[string]interface{}) (*domain.Identity, error) {
	userID, err := uuid.Parse(subject)
	if err != nil || userID == uuid.Nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSubject, subject)
	}

	return &domain.Identity{
		UserID:      userID,
		Email:       strings.TrimSpace(email),
		Metadata:    userMeta,
		AppMetadata: appMeta,
	}, nil
}
