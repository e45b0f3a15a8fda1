package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Identity authenticated user as issued by the auth provider
type Identity struct {
	UserID      uuid.UUID
	Email       string
	Metadata    map[string]interface{} // user_metadata, editable by the user
	AppMetadata map[string]interface{} // app_metadata, set by the provider
}

// MetadataString reads a string value from user metadata
func (i Identity) MetadataString(key string) string {
	return stringValue(i.Metadata, key)
}

// AppMetadataString reads a string value from app metadata
func (i Identity) AppMetadataString(key string) string {
	return stringValue(i.AppMetadata, key)
}

// DisplayName metadata "name", else the local part of the email
func (i Identity) DisplayName() string {
	if name := strings.TrimSpace(i.MetadataString("name")); name != "" {
		return name
	}
	if at := strings.Index(i.Email, "@"); at > 0 {
		return i.Email[:at]
	}
	if i.Email != "" {
		return i.Email
	}
	return "Usuário"
}

func stringValue(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	v, ok := m[key].(string)
	if !ok {
		return ""
	}
	return v
}
