package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"
)

const (
	LangFR = "fr"
	LangEN = "en"
)

//go:embed locales/*.json
var localeFiles embed.FS

// Manager holds the display-label catalogs. The pure calendar core only
// exposes data (which day, which hour); turning it into locale-dependent
// text happens here.
type Manager struct {
	defaultLanguage string
	locales         map[string]map[string]string
	supported       []string
}

func NewManager(defaultLanguage string) (*Manager, error) {
	manager := &Manager{
		locales: map[string]map[string]string{},
	}

	entries, err := localeFiles.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	for _, entry := range entries {
		language := strings.TrimSuffix(strings.ToLower(entry.Name()), path.Ext(entry.Name()))
		content, err := localeFiles.ReadFile(path.Join("locales", entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", language, err)
		}

		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", language, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", language)
		}

		manager.locales[language] = messages
		manager.supported = append(manager.supported, language)
	}

	sort.Strings(manager.supported)

	defaultLanguage = strings.ToLower(strings.TrimSpace(defaultLanguage))
	if _, ok := manager.locales[defaultLanguage]; !ok {
		return nil, fmt.Errorf("unsupported default language %q", defaultLanguage)
	}
	manager.defaultLanguage = defaultLanguage

	return manager, nil
}

func (manager *Manager) DefaultLanguage() string {
	return manager.defaultLanguage
}

func (manager *Manager) Supported() []string {
	return append([]string{}, manager.supported...)
}

// ResolveLanguage maps a requested language onto a supported one, falling
// back to the default.
func (manager *Manager) ResolveLanguage(requested string) string {
	requested = strings.ToLower(strings.TrimSpace(requested))
	if _, ok := manager.locales[requested]; ok {
		return requested
	}
	return manager.defaultLanguage
}

// Translate returns the catalog entry for key, or the key itself when the
// catalog has no entry for it.
func (manager *Manager) Translate(language string, key string) string {
	messages, ok := manager.locales[manager.ResolveLanguage(language)]
	if !ok {
		return key
	}
	if message, ok := messages[key]; ok {
		return message
	}
	return key
}

// MonthLabel renders a header label such as "septembre 2026".
func (manager *Manager) MonthLabel(language string, value time.Time) string {
	monthName := manager.Translate(language, monthKey(value.Month()))
	return fmt.Sprintf("%s %d", monthName, value.Year())
}

// DayLabel renders a column label such as "mardi 1".
func (manager *Manager) DayLabel(language string, value time.Time) string {
	weekdayName := manager.Translate(language, weekdayKey(value.Weekday()))
	return fmt.Sprintf("%s %d", weekdayName, value.Day())
}

// WeekdayLabel renders the bare weekday name for grid headers.
func (manager *Manager) WeekdayLabel(language string, weekday time.Weekday) string {
	return manager.Translate(language, weekdayKey(weekday))
}

func monthKey(month time.Month) string {
	return fmt.Sprintf("month.%d", int(month))
}

func weekdayKey(weekday time.Weekday) string {
	return fmt.Sprintf("weekday.%d", int(weekday))
}
