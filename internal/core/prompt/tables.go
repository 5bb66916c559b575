package prompt

import "github.com/lexbridge/legal-assistant/internal/core/domain"

// label is a descriptor written once per working language.
type label struct {
	en string
	ar string
}

func (l label) in(lang domain.Language) string {
	if lang == domain.LanguageArabic {
		return l.ar
	}
	return l.en
}

var languageNames = map[domain.Language]label{
	domain.LanguageArabic:  {en: "Arabic", ar: "العربية"},
	domain.LanguageEnglish: {en: "English", ar: "الإنجليزية"},
}

var documentTypes = map[domain.DocumentType]label{
	domain.DocLegalMemorandum:     {en: "legal memorandum", ar: "مذكرة قانونية"},
	domain.DocContract:            {en: "contract", ar: "عقد"},
	domain.DocStatementOfClaim:    {en: "statement of claim", ar: "صحيفة دعوى"},
	domain.DocCourtJudgment:       {en: "court judgment", ar: "حكم قضائي"},
	domain.DocLegalCorrespondence: {en: "legal correspondence", ar: "مراسلة قانونية"},
}

var purposes = map[domain.Purpose]label{
	domain.PurposeCourt:    {en: "court submission", ar: "تقديم إلى المحكمة"},
	domain.PurposeInternal: {en: "internal use", ar: "استخدام داخلي"},
	domain.PurposeClient:   {en: "client communication", ar: "مراسلة مع الموكل"},
}

var tones = map[domain.Tone]label{
	domain.ToneFormal:       {en: "highly formal and ceremonial", ar: "رسمي للغاية بصياغة جزلة"},
	domain.ToneProfessional: {en: "professional and business-like", ar: "مهني وعملي"},
	domain.ToneConcise:      {en: "clear and concise", ar: "واضح وموجز"},
}

var jurisdictions = map[domain.Jurisdiction]label{
	domain.JurisdictionQatar:   {en: "Qatari legal system", ar: "النظام القانوني في دولة قطر"},
	domain.JurisdictionGCC:     {en: "GCC regional legal standards", ar: "المعايير القانونية لدول مجلس التعاون الخليجي"},
	domain.JurisdictionNeutral: {en: "international legal standards", ar: "المعايير القانونية الدولية"},
}

var memorandumTypes = map[domain.MemorandumType]label{
	domain.MemoDefense:          {en: "Defense Memorandum", ar: "مذكرة دفاع"},
	domain.MemoResponse:         {en: "Response Memorandum", ar: "مذكرة رد"},
	domain.MemoReply:            {en: "Reply Memorandum", ar: "مذكرة جوابية"},
	domain.MemoStatementOfClaim: {en: "Statement of Claim", ar: "صحيفة دعوى"},
	domain.MemoAppeal:           {en: "Appeal Memorandum", ar: "مذكرة استئناف"},
	domain.MemoLegalMotion:      {en: "Legal Motion", ar: "طلب قانوني"},
}

var strengths = map[domain.Strength]label{
	domain.StrengthStrong:    {en: "assertive and compelling", ar: "قوية ومقنعة"},
	domain.StrengthNeutral:   {en: "balanced and objective", ar: "متوازنة وموضوعية"},
	domain.StrengthDefensive: {en: "cautious and protective", ar: "حذرة ودفاعية"},
}

// describe looks key up in table. Values outside the table are passed through
// verbatim.
func describe[K ~string](table map[K]label, key K, lang domain.Language) string {
	if l, ok := table[key]; ok {
		return l.in(lang)
	}
	return string(key)
}
