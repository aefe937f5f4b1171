package services

import (
	"Henteklar/models"
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	LangNorwegian = "nb"
	LangEnglish   = "en"
)

var supportedLanguages = []language.Tag{language.MustParse(LangNorwegian), language.English}

type TranslationService struct {
	entries          []models.Translation
	matcher          language.Matcher
	translationCache map[string]map[string]string
	mutex            sync.RWMutex
}

// NewTranslationService serves the built-in catalog, with extra entries
// overriding keys of the same name.
func NewTranslationService(extra ...models.Translation) *TranslationService {
	entries := make([]models.Translation, 0, len(catalog)+len(extra))
	entries = append(entries, catalog...)
	entries = append(entries, extra...)
	return &TranslationService{
		entries:          entries,
		matcher:          language.NewMatcher(supportedLanguages),
		translationCache: make(map[string]map[string]string),
	}
}

// LoadTranslations reads catalog overrides from a YAML list of
// {key, nb, en} entries.
func LoadTranslations(path string) ([]models.Translation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	var entries []models.Translation
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse translations %s: %w", path, err)
	}
	for i, t := range entries {
		if t.Key == "" {
			return nil, fmt.Errorf("parse translations %s: entry %d has no key", path, i)
		}
	}
	return entries, nil
}

// MatchLanguage picks nb or en from an Accept-Language header value.
// Norwegian is the default.
func (s *TranslationService) MatchLanguage(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return LangNorwegian
	}
	_, index, confidence := s.matcher.Match(tags...)
	if confidence == language.No || index != 1 {
		return LangNorwegian
	}
	return LangEnglish
}

func (s *TranslationService) GetAllTranslations(lang string) map[string]string {
	if lang != LangEnglish {
		lang = LangNorwegian
	}

	s.mutex.RLock()
	if cached, exists := s.translationCache[lang]; exists {
		s.mutex.RUnlock()
		return cached
	}
	s.mutex.RUnlock()

	result := make(map[string]string, len(s.entries))
	for _, t := range s.entries {
		text := t.Norwegian
		if lang == LangEnglish && t.English != "" {
			text = t.English
		}
		result[t.Key] = text
	}

	s.mutex.Lock()
	s.translationCache[lang] = result
	s.mutex.Unlock()

	return result
}

// Translate looks key up for lang, returning fallback for unknown keys.
func (s *TranslationService) Translate(lang, key, fallback string) string {
	if text, ok := s.GetAllTranslations(lang)[key]; ok {
		return text
	}
	return fallback
}
