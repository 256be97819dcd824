package i18n

var englishTranslations = map[string]string{
	// Run
	"run.config_failed": "Failed to load configuration: %v",
	"run.log_failed":    "Failed to open run log: %v",
	"run.building":      "Building %d slides",
	"run.saved":         "✅ Saved: %s",
	"run.failed":        "❌ Error: %v",
	"run.size":          "Wrote %d bytes",

	// Verification
	"verify.start": "Reading back %s",
	"verify.ok":    "Structure verified: %d slides, %d tables",

	// Exports
	"export.images":  "Exported %d slide images to %s",
	"export.image":   "  Exported slide %02d → %s",
	"export.pdf":     "Handout PDF saved as %s",
	"export.notes":   "Notes PDF saved as %s",
	"export.outline": "Outline workbook saved as %s",
	"export.handout": "Handout document saved as %s",

	// History
	"history.recorded":    "Build %s recorded in %s",
	"history.failed":      "Failed to record build history: %v",
	"history.empty":       "No builds recorded in %s",
	"history.entry":       "%s  %-6s %s  %d slides, %d elements, %d bytes, %v",
	"history.entry_error": "    error: %s",
}
