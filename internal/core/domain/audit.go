package domain

import "time"

// AuditAction tags the kind of sensitive operation recorded.
type AuditAction string

const (
	ActionRegister           AuditAction = "register"
	ActionLogin              AuditAction = "login"
	ActionLogout             AuditAction = "logout"
	ActionTranslate          AuditAction = "translate"
	ActionTranslationRevise  AuditAction = "translation_revise"
	ActionTranslationDelete  AuditAction = "translation_delete"
	ActionMemorandumGenerate AuditAction = "memorandum_generate"
	ActionMemorandumRevise   AuditAction = "memorandum_revise"
	ActionMemorandumDelete   AuditAction = "memorandum_delete"
	ActionSettingsUpdate     AuditAction = "settings_update"
	ActionUserRoleUpdate     AuditAction = "user_role_update"
)

// AuditLogEntry is an append-only record of a sensitive action.
type AuditLogEntry struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	UserEmail string         `json:"userEmail"`
	Action    AuditAction    `json:"action"`
	Details   map[string]any `json:"details,omitempty"`
	IPAddress string         `json:"ipAddress"`
	UserAgent string         `json:"userAgent"`
	CreatedAt time.Time      `json:"createdAt"`
}
