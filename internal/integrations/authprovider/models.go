package authprovider

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims access token провайдера авторизации
type Claims struct {
	Email        string                 `json:"email"`
	Role         string                 `json:"role"` // роль Postgres (authenticated/anon), не роль в салоне
	UserMetadata map[string]interface{} `json:"user_metadata"`
	AppMetadata  map[string]interface{} `json:"app_metadata"`
	jwt.RegisteredClaims
}

// userResponse ответ GET /auth/v1/user
type userResponse struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata map[string]interface{} `json:"user_metadata"`
	AppMetadata  map[string]interface{} `json:"app_metadata"`
}

// errorResponse модель ошибки провайдера
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"msg"`
}
