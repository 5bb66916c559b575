package handler

import "github.com/lexbridge/legal-assistant/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// --- Auth ---

type registerRequest struct {
	Email     string  `json:"email"     validate:"required,email"`
	Password  string  `json:"password"  validate:"required,min=6"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  *string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Translations ---

type translateRequest struct {
	SourceText     string `json:"sourceText"     validate:"required"`
	SourceLanguage string `json:"sourceLanguage" validate:"required,oneof=ar en"`
	TargetLanguage string `json:"targetLanguage" validate:"required,oneof=ar en,nefield=SourceLanguage"`
	DocumentType   string `json:"documentType"   validate:"required,oneof=legal_memorandum contract statement_of_claim court_judgment legal_correspondence"`
	Purpose        string `json:"purpose"        validate:"required,oneof=court internal client"`
	Tone           string `json:"tone"           validate:"required,oneof=formal professional concise"`
	Jurisdiction   string `json:"jurisdiction"   validate:"required,oneof=qatar gcc neutral"`
	// Deterministic defaults to true when omitted.
	Deterministic *bool `json:"deterministic"`
}

type reviseTranslationRequest struct {
	TranslatedText string `json:"translatedText" validate:"required"`
}

// --- Memorandums ---

type generateMemorandumRequest struct {
	Type          string  `json:"type"          validate:"required,oneof=defense_memorandum response_memorandum reply_memorandum statement_of_claim appeal_memorandum legal_motion"`
	Language      string  `json:"language"      validate:"required,oneof=ar en"`
	CourtName     string  `json:"courtName"     validate:"required,max=255"`
	CaseNumber    string  `json:"caseNumber"    validate:"required,max=100"`
	CaseFacts     string  `json:"caseFacts"     validate:"required"`
	LegalRequests string  `json:"legalRequests" validate:"required"`
	DefensePoints *string `json:"defensePoints"`
	Strength      string  `json:"strength"      validate:"required,oneof=strong neutral defensive"`
	Deterministic *bool   `json:"deterministic"`
}

type reviseMemorandumRequest struct {
	Content string `json:"content" validate:"required"`
}

// --- Settings & admin ---

type updateSettingsRequest struct {
	LogoURL     *string `json:"logoUrl"`
	AppTitle    *string `json:"appTitle"    validate:"omitempty,max=255"`
	AppSubtitle *string `json:"appSubtitle" validate:"omitempty,max=255"`
	FooterText  *string `json:"footerText"  validate:"omitempty,max=1000"`
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

func deterministic(flag *bool) bool {
	return flag == nil || *flag
}
