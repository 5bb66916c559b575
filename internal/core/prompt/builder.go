// Package prompt turns validated request fields into the system and user
// prompts sent to the completion service. Every function here is pure: the
// same arguments always produce byte-identical output.
package prompt

import (
	"fmt"
	"strings"

	"github.com/lexbridge/legal-assistant/internal/core/domain"
)

const translationTemplateEN = `You are an expert legal translator specializing in %[1]s to %[2]s translation of legal documents.

DOCUMENT TYPE: %[3]s
PURPOSE: %[4]s
TONE: %[5]s
JURISDICTION: %[6]s

TRANSLATION GUIDELINES:
1. Provide a context-aware legal translation, not a literal word-for-word rendering
2. Preserve the accuracy and precision of legal terminology
3. Keep the register suitable for the stated purpose and tone
4. Use the wording and phrasing established in the stated jurisdiction
5. Keep the original structure, numbering and formatting where appropriate
6. Translate only what the text contains: never add or complete references to laws, articles, judgments or case numbers that are not in the source text
7. Treat this text as a self-contained matter: do not bring in names, facts or terms from any other document or case
8. Do not add explanations or notes - output only the translation

Translate the following legal text from %[1]s to %[2]s:`

const translationTemplateAR = `أنت مترجم قانوني متمرس، تترجم الوثائق القانونية من %[1]s إلى %[2]s.

نوع الوثيقة: %[3]s
الغرض من الترجمة: %[4]s
أسلوب الصياغة: %[5]s
المرجعية القانونية: %[6]s

ضوابط الترجمة:
1. انقل المعنى القانوني في سياقه ولا تلتزم بالترجمة الحرفية كلمة بكلمة
2. حافظ على دقة المصطلحات القانونية وانضباطها
3. التزم بمستوى اللغة الملائم للغرض والأسلوب المحددين أعلاه
4. استعمل العبارات والمصطلحات المستقرة في المرجعية القانونية المحددة
5. أبقِ على بنية النص الأصلي وترقيمه وتنسيقه قدر الإمكان
6. لا تضف أي إحالة إلى قانون أو مادة أو حكم أو رقم قضية لم يرد في النص الأصلي، ولا تكمل إحالة ناقصة من عندك
7. تعامل مع هذا النص باعتباره مسألة مستقلة، ولا تستحضر أسماء أو وقائع أو مصطلحات من أي وثيقة أو قضية أخرى
8. لا تضف شروحاً أو ملاحظات، واكتفِ بإخراج النص المترجم فقط

ترجم النص القانوني التالي من %[1]s إلى %[2]s:`

const memorandumTemplateEN = `You are an expert lawyer specializing in drafting legal memorandums in English.

DOCUMENT TYPE: %[1]s
WRITING STYLE: %[2]s

DRAFTING GUIDELINES:
1. Use formal legal English appropriate for court submissions
2. Follow standard legal document structure
3. Provide logical legal analysis of the facts
4. Use established legal terminology and phrasing
5. Do not cite laws, articles, precedents or case references unless they appear in the information provided below
6. Base the memorandum solely on the facts of this case; ignore any other case, party or prior request
7. Make arguments coherent and well-structured
8. Conclude with clear and specific requests/prayers

Draft the legal memorandum based on the following information:`

const memorandumTemplateAR = `أنت محامٍ خبير متخصص في صياغة المذكرات القانونية باللغة العربية.

نوع المذكرة: %[1]s
أسلوب الصياغة: %[2]s

إرشادات الصياغة:
1. استخدم اللغة القانونية العربية الفصحى المناسبة للمحاكم
2. اتبع الهيكل القانوني المعتمد في المحاكم
3. قدم تحليلاً قانونياً منطقياً للوقائع
4. استخدم العبارات القانونية الرسمية والمعتمدة
5. لا تستشهد بأي قانون أو مادة أو سابقة قضائية ما لم تكن واردة في المعلومات المقدمة أدناه
6. اقصر المذكرة على وقائع هذه القضية وحدها، ولا تخلطها بأي قضية أو خصوم أو طلبات سابقة
7. اجعل الحجج القانونية قوية ومتماسكة
8. اختم المذكرة بالطلبات بشكل واضح ومحدد

قم بصياغة المذكرة القانونية بناءً على المعلومات التالية:`

// TranslationPrompt builds the system prompt for translating a legal text.
// The instructions are written in Arabic when the target language is Arabic.
func TranslationPrompt(
	source, target domain.Language,
	docType domain.DocumentType,
	purpose domain.Purpose,
	tone domain.Tone,
	jurisdiction domain.Jurisdiction,
) string {
	lang := domain.LanguageEnglish
	tmpl := translationTemplateEN
	if target == domain.LanguageArabic {
		lang = domain.LanguageArabic
		tmpl = translationTemplateAR
	}

	return fmt.Sprintf(tmpl,
		describe(languageNames, source, lang),
		describe(languageNames, target, lang),
		describe(documentTypes, docType, lang),
		describe(purposes, purpose, lang),
		describe(tones, tone, lang),
		describe(jurisdictions, jurisdiction, lang),
	)
}

// MemorandumPrompt builds the system prompt for drafting a memorandum.
func MemorandumPrompt(memoType domain.MemorandumType, lang domain.Language, strength domain.Strength) string {
	tmpl := memorandumTemplateEN
	if lang == domain.LanguageArabic {
		tmpl = memorandumTemplateAR
	} else {
		lang = domain.LanguageEnglish
	}
	return fmt.Sprintf(tmpl,
		describe(memorandumTypes, memoType, lang),
		describe(strengths, strength, lang),
	)
}

// MemorandumUserPrompt lays out the case details submitted by the user.
// The defense points section is omitted when defensePoints is nil or blank.
func MemorandumUserPrompt(
	lang domain.Language,
	courtName, caseNumber, caseFacts, legalRequests string,
	defensePoints *string,
) string {
	headings := [...]string{"Court Name", "Case Number", "Case Facts", "Legal Requests", "Defense Points"}
	if lang == domain.LanguageArabic {
		headings = [...]string{"اسم المحكمة", "رقم القضية", "وقائع القضية", "الطلبات القانونية", "نقاط الدفاع"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", headings[0], courtName)
	fmt.Fprintf(&b, "%s: %s\n\n", headings[1], caseNumber)
	fmt.Fprintf(&b, "%s:\n%s\n\n", headings[2], caseFacts)
	fmt.Fprintf(&b, "%s:\n%s", headings[3], legalRequests)

	if defensePoints != nil && strings.TrimSpace(*defensePoints) != "" {
		fmt.Fprintf(&b, "\n\n%s:\n%s", headings[4], *defensePoints)
	}
	return b.String()
}
