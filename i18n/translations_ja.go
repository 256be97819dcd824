package i18n

var japaneseTranslations = map[string]string{
	"run.config_failed": "設定の読み込みに失敗しました: %v",
	"run.log_failed":    "ログファイルを開けませんでした: %v",
	"run.building":      "%d 枚のスライドを作成しています",
	"run.saved":         "✅ 作成完了: %s",
	"run.failed":        "❌ エラー: %v",
	"run.size":          "%d バイト書き込みました",

	"verify.start": "%s を読み込んで確認しています",
	"verify.ok":    "構造を確認しました: スライド %d 枚、表 %d 個",

	"export.images":  "%d 枚のスライド画像を %s に出力しました",
	"export.image":   "  スライド %02d を出力 → %s",
	"export.pdf":     "配布用 PDF を %s に保存しました",
	"export.notes":   "ノート PDF を %s に保存しました",
	"export.outline": "アウトラインを %s に保存しました",
	"export.handout": "配布資料を %s に保存しました",

	"history.recorded":    "ビルド %s を %s に記録しました",
	"history.failed":      "ビルド履歴の記録に失敗しました: %v",
	"history.empty":       "%s に記録されたビルドはありません",
	"history.entry":       "%s  %-6s %s  スライド %d 枚、要素 %d 個、%d バイト、%v",
	"history.entry_error": "    エラー: %s",
}
