package i18n

import (
	"github.com/yuyalush/agent-instructions-research/config"
)

// SyncLanguageFromConfig sets the current language from the run config
func SyncLanguageFromConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	SetLanguage(ParseLanguage(cfg.Language))
}

// ParseLanguage converts a string to Language type
func ParseLanguage(langStr string) Language {
	switch langStr {
	case "日本語", "ja", "Japanese":
		return Japanese
	default:
		return English
	}
}
