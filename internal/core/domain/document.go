package domain

import "time"

// Language is one of the two working languages.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// DocumentType classifies the text submitted for translation.
type DocumentType string

const (
	DocLegalMemorandum     DocumentType = "legal_memorandum"
	DocContract            DocumentType = "contract"
	DocStatementOfClaim    DocumentType = "statement_of_claim"
	DocCourtJudgment       DocumentType = "court_judgment"
	DocLegalCorrespondence DocumentType = "legal_correspondence"
)

// Purpose is the intended audience of a translation.
type Purpose string

const (
	PurposeCourt    Purpose = "court"
	PurposeInternal Purpose = "internal"
	PurposeClient   Purpose = "client"
)

// Tone controls the register of the translated text.
type Tone string

const (
	ToneFormal       Tone = "formal"
	ToneProfessional Tone = "professional"
	ToneConcise      Tone = "concise"
)

// Jurisdiction selects the legal vocabulary the translation should follow.
type Jurisdiction string

const (
	JurisdictionQatar   Jurisdiction = "qatar"
	JurisdictionGCC     Jurisdiction = "gcc"
	JurisdictionNeutral Jurisdiction = "neutral"
)

// MemorandumType is the kind of pleading being drafted.
type MemorandumType string

const (
	MemoDefense          MemorandumType = "defense_memorandum"
	MemoResponse         MemorandumType = "response_memorandum"
	MemoReply            MemorandumType = "reply_memorandum"
	MemoStatementOfClaim MemorandumType = "statement_of_claim"
	MemoAppeal           MemorandumType = "appeal_memorandum"
	MemoLegalMotion      MemorandumType = "legal_motion"
)

// Strength is the argumentative posture of a memorandum.
type Strength string

const (
	StrengthStrong    Strength = "strong"
	StrengthNeutral   Strength = "neutral"
	StrengthDefensive Strength = "defensive"
)

// TranslationVersion is one entry of a translation's revision log.
type TranslationVersion struct {
	ID             string    `json:"id"`
	TranslatedText string    `json:"translatedText"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Translation is a translated legal text owned by a single user.
// TranslatedText always reflects the latest version.
type Translation struct {
	ID             string               `json:"id"`
	UserID         string               `json:"userId"`
	SourceLanguage Language             `json:"sourceLanguage"`
	TargetLanguage Language             `json:"targetLanguage"`
	SourceText     string               `json:"sourceText"`
	TranslatedText string               `json:"translatedText"`
	DocumentType   DocumentType         `json:"documentType"`
	Purpose        Purpose              `json:"purpose"`
	Tone           Tone                 `json:"tone"`
	Jurisdiction   Jurisdiction         `json:"jurisdiction"`
	CreatedAt      time.Time            `json:"createdAt"`
	Versions       []TranslationVersion `json:"versions"`
}

// MemorandumVersion is one entry of a memorandum's revision log.
type MemorandumVersion struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Memorandum is a drafted pleading owned by a single user.
// GeneratedContent always reflects the latest version.
type Memorandum struct {
	ID               string              `json:"id"`
	UserID           string              `json:"userId"`
	Type             MemorandumType      `json:"type"`
	Language         Language            `json:"language"`
	CourtName        string              `json:"courtName"`
	CaseNumber       string              `json:"caseNumber"`
	CaseFacts        string              `json:"caseFacts"`
	LegalRequests    string              `json:"legalRequests"`
	DefensePoints    *string             `json:"defensePoints"`
	Strength         Strength            `json:"strength"`
	GeneratedContent string              `json:"generatedContent"`
	CreatedAt        time.Time           `json:"createdAt"`
	Versions         []MemorandumVersion `json:"versions"`
}
