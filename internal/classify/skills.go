package classify

import "strings"

const (
	minTokenLen = 2
	maxTokenLen = 40
)

// skillStopwords filters articles, generic HR boilerplate and place names
// out of the skill vocabulary. Lowercase, compared after trimming.
var skillStopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "with": {}, "in": {},
	"of": {}, "for": {}, "to": {}, "etc": {}, "na": {}, "n/a": {}, "nan": {},
	"none": {}, "not specified": {}, "others": {}, "other": {},
	"experience": {}, "education": {}, "skills": {}, "requirements": {},
	"fresher": {}, "freshers": {}, "any": {}, "minimum": {}, "maximum": {},
	"preferred": {}, "required": {}, "knowledge": {}, "good communication": {},
	"dhaka": {}, "chattogram": {}, "chittagong": {}, "sylhet": {},
	"khulna": {}, "rajshahi": {}, "barishal": {}, "rangpur": {},
	"bangladesh": {}, "anywhere in bangladesh": {},
}

// tokenSplitter reports the delimiter set used to break skill text apart.
func tokenSplitter(r rune) bool {
	switch r {
	case ',', '/', '|', ';', '\n':
		return true
	}
	return false
}

// SkillTokens splits semi-structured skills text into the normalized token
// vocabulary used for frequency ranking: split on , / | ; and newlines,
// lowercase, trim, keep tokens of 2-40 runes that are not stopwords.
func SkillTokens(text string) []string {
	parts := strings.FieldsFunc(text, tokenSplitter)
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		tok := strings.ToLower(strings.TrimSpace(part))
		// The skills column is a composite of labelled fragments; the labels
		// themselves are boilerplate, not vocabulary.
		tok = strings.TrimSpace(strings.TrimPrefix(tok, "experience:"))
		tok = strings.TrimSpace(strings.TrimPrefix(tok, "education:"))
		if n := len([]rune(tok)); n < minTokenLen || n > maxTokenLen {
			continue
		}
		if _, stop := skillStopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
