package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/yuyalush/agent-instructions-research/config"
)

func TestTranslate(t *testing.T) {
	tr := NewTranslator(English)
	assert.Equal(t, "Building 12 slides", tr.T("run.building", 12))

	tr.SetLanguage(Japanese)
	assert.Equal(t, "✅ 作成完了: deck.pptx", tr.T("run.saved", "deck.pptx"))
}

func TestTranslateUnknownKey(t *testing.T) {
	tr := NewTranslator(Japanese)
	assert.Equal(t, "no.such.key", tr.T("no.such.key"))
}

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range englishTranslations {
		_, ok := japaneseTranslations[key]
		assert.True(t, ok, "missing Japanese translation for %s", key)
	}
	for key := range japaneseTranslations {
		_, ok := englishTranslations[key]
		assert.True(t, ok, "Japanese key %s has no English entry", key)
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want Language
	}{
		{"English", English},
		{"日本語", Japanese},
		{"ja", Japanese},
		{"", English},
		{"简体中文", English},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLanguage(tt.in), tt.in)
	}
}

func TestSyncLanguageFromConfig(t *testing.T) {
	defer SetLanguage(English)

	SyncLanguageFromConfig(&config.Config{Language: "日本語"})
	assert.Equal(t, Japanese, GetLanguage())

	SyncLanguageFromConfig(nil)
	assert.Equal(t, Japanese, GetLanguage())
}

// Property: every key resolves to a non-empty string in every language.
func TestPropertyAllKeysResolve(t *testing.T) {
	keys := make([]string, 0, len(englishTranslations))
	for k := range englishTranslations {
		keys = append(keys, k)
	}

	rapid.Check(t, func(rt *rapid.T) {
		lang := rapid.SampledFrom([]Language{English, Japanese}).Draw(rt, "lang")
		key := rapid.SampledFrom(keys).Draw(rt, "key")
		got := NewTranslator(lang).T(key)
		if got == "" || got == key {
			rt.Fatalf("%s has no %s translation", key, lang)
		}
	})
}
