package transcript

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode"
)

// MetadataOptions carries caller-supplied overrides; empty fields are derived.
type MetadataOptions struct {
	Title            string
	Keywords         string
	Type             string
	DocumentID       string
	RelatedDocuments []string
	DocumentLinks    map[string]string
}

// BuildMetadata derives the front-matter block for one source file.
func BuildMetadata(sourcePath string, opts MetadataOptions, res Result, now time.Time) Metadata {
	title := opts.Title
	if title == "" {
		title = TitleFromPath(sourcePath)
	}

	docType := opts.Type
	if docType == "" {
		docType = "meeting"
	}

	return Metadata{
		Title:            title,
		Date:             now.Format("2006-01-02"),
		Type:             docType,
		Keywords:         KeywordsFromPath(sourcePath, opts.Keywords),
		SourceFile:       filepath.Base(sourcePath),
		DocumentID:       DocumentID(sourcePath, opts.DocumentID, now),
		RelatedDocuments: opts.RelatedDocuments,
		DocumentLinks:    opts.DocumentLinks,
		Participants:     strings.Join(res.Participants(), ", "),
	}
}

// TitleFromPath derives a display title from the base filename: separators
// become spaces, camelCase boundaries split, each word capitalized.
func TitleFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	base = splitCamelCase(base)

	words := strings.Fields(base)
	for i, w := range words {
		words[i] = capitalizeWord(w)
	}
	return strings.Join(words, " ")
}

func splitCamelCase(s string) string {
	var b strings.Builder
	var prev rune
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(prev) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}

func capitalizeWord(w string) string {
	runes := []rune(w)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// keywordVocabulary is the closed set of terms matched against the path.
var keywordVocabulary = []string{
	"meeting", "transcript", "discussion", "standup", "retrospective",
	"planning", "interview", "demo", "sync", "review",
}

// baseKeywords are always present in the output.
var baseKeywords = []string{"meeting", "transcript", "discussion"}

// KeywordsFromPath scans the path segments and filename against the fixed
// vocabulary, prepends any caller-supplied comma-separated keywords, appends
// the base set and deduplicates, preserving first-seen order.
func KeywordsFromPath(path, extra string) string {
	var out []string
	seen := make(map[string]bool)

	add := func(k string) {
		k = strings.TrimSpace(k)
		key := strings.ToLower(k)
		if k == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, k)
	}

	for _, k := range strings.Split(extra, ",") {
		add(k)
	}

	lower := strings.ToLower(path)
	for _, term := range keywordVocabulary {
		if strings.Contains(lower, term) {
			add(term)
		}
	}

	for _, term := range baseKeywords {
		add(term)
	}

	return strings.Join(out, ", ")
}

var (
	reNonIDChar = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	reDashRun   = regexp.MustCompile(`-{2,}`)
)

// DocumentID returns the explicit id when supplied, otherwise synthesizes
// one from the sanitized base filename and the date.
func DocumentID(path, explicit string, now time.Time) string {
	if explicit != "" {
		return explicit
	}
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = reNonIDChar.ReplaceAllString(base, "-")
	base = reDashRun.ReplaceAllString(base, "-")
	return fmt.Sprintf("transcript-%s-%s", base, now.Format("20060102"))
}
