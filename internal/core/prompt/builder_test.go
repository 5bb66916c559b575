package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

func TestTranslationPrompt_IsDeterministic(t *testing.T) {
	a := TranslationPrompt(domain.LanguageArabic, domain.LanguageEnglish, domain.DocContract, domain.PurposeCourt, domain.ToneFormal, domain.JurisdictionQatar)
	b := TranslationPrompt(domain.LanguageArabic, domain.LanguageEnglish, domain.DocContract, domain.PurposeCourt, domain.ToneFormal, domain.JurisdictionQatar)

	require.Equal(t, a, b)
}

func TestTranslationPrompt_EnglishTarget(t *testing.T) {
	p := TranslationPrompt(domain.LanguageArabic, domain.LanguageEnglish, domain.DocCourtJudgment, domain.PurposeClient, domain.ToneFormal, domain.JurisdictionGCC)

	assert.Contains(t, p, "Arabic to English")
	assert.Contains(t, p, "DOCUMENT TYPE: court judgment")
	assert.Contains(t, p, "PURPOSE: client communication")
	assert.Contains(t, p, "TONE: highly formal and ceremonial")
	assert.Contains(t, p, "JURISDICTION: GCC regional legal standards")
	assert.Contains(t, p, "never add or complete references to laws")
	assert.Contains(t, p, "self-contained matter")
	assert.True(t, strings.HasSuffix(p, "from Arabic to English:"))
}

func TestTranslationPrompt_ArabicTargetIsWrittenInArabic(t *testing.T) {
	p := TranslationPrompt(domain.LanguageEnglish, domain.LanguageArabic, domain.DocContract, domain.PurposeInternal, domain.ToneConcise, domain.JurisdictionNeutral)

	assert.Contains(t, p, "من الإنجليزية إلى العربية")
	assert.Contains(t, p, "نوع الوثيقة: عقد")
	assert.Contains(t, p, "أسلوب الصياغة: واضح وموجز")
	assert.Contains(t, p, "لا تضف أي إحالة")
	assert.Contains(t, p, "مسألة مستقلة")
	assert.NotContains(t, p, "TRANSLATION GUIDELINES")
}

func TestTranslationPrompt_UnknownValuesPassThrough(t *testing.T) {
	p := TranslationPrompt(domain.LanguageArabic, domain.LanguageEnglish, "power_of_attorney", "arbitration", "poetic", "bahrain")

	assert.Contains(t, p, "DOCUMENT TYPE: power_of_attorney")
	assert.Contains(t, p, "PURPOSE: arbitration")
	assert.Contains(t, p, "TONE: poetic")
	assert.Contains(t, p, "JURISDICTION: bahrain")
}

func TestMemorandumPrompt_English(t *testing.T) {
	p := MemorandumPrompt(domain.MemoAppeal, domain.LanguageEnglish, domain.StrengthDefensive)

	assert.Contains(t, p, "DOCUMENT TYPE: Appeal Memorandum")
	assert.Contains(t, p, "WRITING STYLE: cautious and protective")
	assert.Contains(t, p, "Do not cite laws")
	assert.Contains(t, p, "ignore any other case")
}

func TestMemorandumPrompt_ArabicIsIndependentBranch(t *testing.T) {
	p := MemorandumPrompt(domain.MemoDefense, domain.LanguageArabic, domain.StrengthStrong)

	assert.Contains(t, p, "نوع المذكرة: مذكرة دفاع")
	assert.Contains(t, p, "أسلوب الصياغة: قوية ومقنعة")
	assert.Contains(t, p, "لا تستشهد بأي قانون")
	assert.Contains(t, p, "ولا تخلطها بأي قضية")
	assert.NotContains(t, p, "DRAFTING GUIDELINES")
}

func TestMemorandumPrompt_UnknownValuesPassThrough(t *testing.T) {
	p := MemorandumPrompt("cassation_brief", domain.LanguageArabic, "aggressive")

	assert.Contains(t, p, "نوع المذكرة: cassation_brief")
	assert.Contains(t, p, "أسلوب الصياغة: aggressive")
}

func TestMemorandumUserPrompt(t *testing.T) {
	points := "Lack of jurisdiction"

	cases := []struct {
		name   string
		lang   domain.Language
		points *string
		want   string
	}{
		{
			name: "english without defense points",
			lang: domain.LanguageEnglish,
			want: "Court Name: Doha Court\nCase Number: 12/2024\n\nCase Facts:\nfacts\n\nLegal Requests:\nrequests",
		},
		{
			name:   "english with defense points",
			lang:   domain.LanguageEnglish,
			points: &points,
			want:   "Court Name: Doha Court\nCase Number: 12/2024\n\nCase Facts:\nfacts\n\nLegal Requests:\nrequests\n\nDefense Points:\nLack of jurisdiction",
		},
		{
			name:   "arabic with defense points",
			lang:   domain.LanguageArabic,
			points: &points,
			want:   "اسم المحكمة: Doha Court\nرقم القضية: 12/2024\n\nوقائع القضية:\nfacts\n\nالطلبات القانونية:\nrequests\n\nنقاط الدفاع:\nLack of jurisdiction",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MemorandumUserPrompt(tc.lang, "Doha Court", "12/2024", "facts", "requests", tc.points)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMemorandumUserPrompt_BlankDefensePointsOmitted(t *testing.T) {
	blank := "   "
	got := MemorandumUserPrompt(domain.LanguageEnglish, "c", "n", "f", "r", &blank)

	assert.NotContains(t, got, "Defense Points")
}
