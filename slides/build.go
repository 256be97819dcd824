package slides

import (
	"github.com/yuyalush/agent-instructions-research/deck"
)

// New lays out the full twelve-slide deck and returns its builder, ready
// to be finalized with a renderer.
func New() *deck.Builder {
	b := deck.New(deck.WithAuthor(Author), deck.WithTitle(Title))

	builders := []func(*deck.Builder, int, int){
		titleSlide,
		overviewSlide,
		comparisonSlide,
		agentsMdSlide,
		copilotInstructionsSlide,
		pathInstructionsSlide,
		agentSkillsSlide,
		promptsAndAgentsSlide,
		setupStepsSlide,
		writingTipsSlide,
		summarySlide,
		referencesSlide,
	}
	for i, fn := range builders {
		fn(b, i+1, TotalPages)
	}
	return b
}

func titleSlide(b *deck.Builder, num, total int) {
	p := newPage(b, navy, num, total, "AGENTS.md を活用したエージェント指示・スキル設定")

	p.bar(0, 0, 0.18, canvasH, teal)
	p.bar(0.18, 0, 0.06, canvasH, mint)

	p.add(deck.Text(0.55, 1.05, 8.4, 1.8, "AGENTS.md を活用した\nエージェント指示・スキル設定",
		bold(fontTitle, 34, white), deck.WithAlign(deck.AlignLeft)))
	p.add(deck.Text(0.55, 2.95, 8.4, 0.5, "手法まとめ  ―  GitHub Copilot で試せる 6 つのアプローチ",
		font(fontBody, 15, seafoam), deck.WithAlign(deck.AlignLeft)))
	p.add(deck.Text(0.55, 4.8, 3, 0.35, "2026年2月25日",
		font(fontBody, 11, darkMute), deck.WithAlign(deck.AlignLeft)))

	p.footer(true)
}

func overviewSlide(b *deck.Builder, num, total int) {
	p := newPage(b, lightBg, num, total, "AGENTS.md とは？")
	p.header(navy, "AGENTS.md とは？", 20)

	p.card(0.3, 1.0, 4.3, 3.8)
	p.accentBar(teal, 0.3, 1.0, 3.8)
	p.heading(0.55, 1.1, 3.9, 0.4, "概要", 14, teal)
	p.add(deck.Runs(0.55, 1.6, 3.9, 3.0, []deck.TextRun{
		{Text: "オープンフォーマット", Bullet: true, Bold: true, BreakLine: true},
		{Text: "AIコーディングエージェントにプロジェクト固有の\n文脈・指示を伝えるための標準仕様", BreakLine: true},
		{BreakLine: true},
		{Text: "GitHub に 18,000+ スター", Bullet: true, Bold: true, BreakLine: true},
		{Text: "OpenAI の Romain Huet らが中心となって公開", BreakLine: true},
		{BreakLine: true},
		{Text: "GitHub Copilot 公式サポート", Bullet: true, Bold: true, BreakLine: true},
		{Text: "VS Code でネイティブ対応済み"},
	}, font(fontBody, 12, textDark), deck.WithVAlign(deck.VAlignTop)))

	p.card(5.1, 1.0, 4.5, 3.8)
	p.accentBar(seafoam, 5.1, 1.0, 3.8)
	p.heading(5.35, 1.1, 4.0, 0.4, "対応ツール", 14, seafoam)
	p.add(deck.Runs(5.35, 1.6, 4.0, 3.0, deck.Bullets(supportedTools),
		font(fontBody, 12, textDark), deck.WithVAlign(deck.VAlignTop), deck.WithLineSpacing(1.4)))

	p.footer(false)
}

func comparisonSlide(b *deck.Builder, num, total int) {
	p := newPage(b, white, num, total, "6つの手法 — 比較一覧")
	p.header(navy, "6つの手法 — 比較一覧", 20)

	p.add(deck.Table(0.3, 0.9, 9.4, 4.3, comparisonRows(),
		deck.TableFont(font(fontBody, 11, textDark)),
		deck.CellBorder(tableLine, 0.5),
		deck.TableFill(white),
		deck.RowHeight(0.62),
		deck.TableAlign(deck.AlignLeft, deck.VAlignMiddle),
		deck.ColumnWidths(2.2, 2.0, 1.5, 3.7),
	))

	p.footer(false)
}

func agentsMdSlide(b *deck.Builder, num, total int) {
	p := newPage(b, lightBg, num, total, "手法 1  |  AGENTS.md")
	p.header(teal, "手法 1  |  AGENTS.md", 20)
	p.badge(0.3, 0.9, 2.2, 0.38, mint, navy, "オープン標準 / 複数エージェント対応")

	p.card(0.3, 1.45, 4.3, 3.5)
	p.accentBar(teal, 0.3, 1.45, 3.5)
	p.heading(0.55, 1.55, 3.9, 0.38, "概要・特徴", 13, teal)
	p.add(deck.Runs(0.55, 2.0, 3.9, 2.7, deck.Bullets([]string{
		"リポジトリのルート・各サブディレクトリに配置",
		"「エージェント向け README」として機能",
		"サブディレクトリ別に異なる指示が可能（実験的）",
		"GitHub Copilot では chat.useAgentsMdFile 設定で有効化（デフォルト ON）",
	}), font(fontBody, 11.5, textDark), deck.WithVAlign(deck.VAlignTop), deck.WithLineSpacing(1.5)))

	p.card(5.0, 1.45, 4.5, 3.5)
	p.accentBar(seafoam, 5.0, 1.45, 3.5)
	p.heading(5.25, 1.55, 4.0, 0.38, "典型的なセクション構成", 13, seafoam)
	p.add(deck.Runs(5.25, 2.0, 4.0, 2.7, []deck.TextRun{
		{Text: "Dev environment tips", Bold: true, BreakLine: true},
		{Text: "ビルド手順・開発ツールのヒント", Color: textMute, BreakLine: true},
		{BreakLine: true},
		{Text: "Testing instructions", Bold: true, BreakLine: true},
		{Text: "CI設定・テスト実行コマンド", Color: textMute, BreakLine: true},
		{BreakLine: true},
		{Text: "PR instructions", Bold: true, BreakLine: true},
		{Text: "コミット前チェック・PR タイトル規則", Color: textMute},
	}, font(fontBody, 11.5, textDark), deck.WithVAlign(deck.VAlignTop)))

	p.footer(false)
}

func copilotInstructionsSlide(b *deck.Builder, num, total int) {
	p := newPage(b, white, num, total, "手法 2  |  copilot-instructions.md")
	p.header(navyMid, "手法 2  |  copilot-instructions.md", 20)
	p.badge(0.3, 0.9, 1.9, 0.38, badgeAmber, badgeAmberT, "GitHub Copilot 専用")

	p.bar(0.3, 1.42, 9.3, 0.42, codeBg)
	p.add(deck.Text(0.5, 1.42, 9.0, 0.42, ".github/copilot-instructions.md",
		font(fontCode, 13, mint), deck.WithVAlign(deck.VAlignMiddle)))

	for i, c := range copilotInstructionCards {
		x := 0.3 + float64(i)*3.15
		p.card(x, 2.0, 2.95, 3.2)
		p.bar(x, 2.0, 2.95, 0.45, c.color)
		p.add(deck.Text(x+0.1, 2.0, 2.75, 0.45, c.title,
			bold(fontTitle, 13, white), deck.WithVAlign(deck.VAlignMiddle)))
		p.add(deck.Runs(x+0.1, 2.55, 2.75, 2.55, deck.Bullets(c.items),
			font(fontBody, 11, textDark), deck.WithVAlign(deck.VAlignTop), deck.WithLineSpacing(1.5)))
	}

	p.footer(false)
}

func pathInstructionsSlide(b *deck.Builder, num, total int) {
	p := newPage(b, lightBg, num, total, "手法 3  |  *.instructions.md")
	p.header(teal, "手法 3  |  *.instructions.md  ―  パス別指示ファイル", 18)

	p.card(0.3, 0.9, 4.0, 4.3)
	p.accentBar(teal, 0.3, 0.9, 4.3)
	p.heading(0.55, 1.0, 3.6, 0.38, "特徴", 13, teal)
	// The source deck leaves a trailing break after the last feature.
	features := deck.Bullets([]string{
		".github/instructions/ 以下に配置",
		"glob パターンで適用範囲を指定",
		"手動添付も可能",
	})
	features[len(features)-1].BreakLine = true
	p.add(deck.Runs(0.55, 1.45, 3.6, 1.4, features,
		font(fontBody, 11.5, textDark), deck.WithVAlign(deck.VAlignTop), deck.WithLineSpacing(1.5)))

	p.heading(0.55, 2.9, 3.6, 0.38, "フロントマターのキー", 13, teal)
	p.add(deck.Table(0.55, 3.35, 3.5, 1.65, frontMatterRows(),
		deck.TableFont(font(fontBody, 10.5, textDark)),
		deck.CellBorder(tableLine, 0.5),
		deck.TableFill(white),
		deck.RowHeight(0.42),
		deck.ColumnWidths(1.3, 2.2),
	))

	p.card(4.6, 0.9, 5.1, 4.3)
	p.heading(4.85, 1.0, 4.6, 0.35, "フォーマット例", 13, navyMid)
	p.code(box(4.75, 1.42, 4.85, 3.5), box(4.95, 1.55, 4.5, 3.2), instructionsExample, 10.5)

	p.footer(false)
}

func agentSkillsSlide(b *deck.Builder, num, total int) {
	p := newPage(b, white, num, total, "手法 4  |  Agent Skills （SKILL.md）")
	p.header(seafoam, "手法 4  |  Agent Skills （SKILL.md）", 20)
	p.badge(0.3, 0.87, 2.1, 0.38, mint, navy, "オープン標準 (agentskills.io)")

	p.card(0.3, 1.4, 3.6, 3.8)
	p.heading(0.5, 1.5, 3.2, 0.38, "ディレクトリ構造", 13, seafoam)
	p.code(box(0.4, 1.95, 3.4, 3.0), box(0.55, 2.05, 3.1, 2.75), skillTree, 10)

	p.card(4.1, 1.4, 2.5, 3.8)
	p.accentBar(seafoam, 4.1, 1.4, 3.8)
	p.heading(4.35, 1.5, 2.1, 0.38, "特徴", 13, seafoam)
	p.add(deck.Runs(4.35, 1.95, 2.1, 3.0, deck.Bullets([]string{
		"指示＋スクリプト＋リソースを同梱",
		"タスク合致時にオンデマンドで読み込み",
		"VS Code / GitHub Copilot CLI / Coding Agent で共通利用",
		"スラッシュコマンドとしても呼び出し可",
	}), font(fontBody, 10.5, textDark), deck.WithVAlign(deck.VAlignTop), deck.WithLineSpacing(1.5)))

	p.card(6.85, 1.4, 2.8, 3.8)
	p.accentBar(teal, 6.85, 1.4, 3.8)
	p.heading(7.1, 1.5, 2.4, 0.38, "SKILL.md ヘッダー", 13, teal)
	p.code(box(6.95, 1.95, 2.6, 3.0), box(7.05, 2.05, 2.4, 2.75), skillHeader, 9.5)

	p.footer(false)
}

func promptsAndAgentsSlide(b *deck.Builder, num, total int) {
	p := newPage(b, lightBg, num, total, "手法 5 & 6  |  Prompt Files / Custom Agents")
	p.header(navy, "手法 5 & 6  |  Prompt Files / Custom Agents", 20)

	p.card(0.3, 0.9, 4.3, 4.3)
	p.bar(0.3, 0.9, 4.3, 0.5, teal)
	p.add(deck.Text(0.45, 0.9, 4.0, 0.5, "手法 5 — Prompt Files (プロンプトファイル)",
		bold(fontTitle, 12.5, white), deck.WithVAlign(deck.VAlignMiddle)))
	p.add(deck.Runs(0.5, 1.5, 3.9, 1.7, deck.Bullets([]string{
		"*.prompt.md として .github/instructions/ 以下に配置",
		"/コマンド名 でチャットから呼び出せるスラッシュコマンド",
		"繰り返しタスク（コンポーネント生成・PR 作成など）に最適",
		"VS Code 専用",
	}), font(fontBody, 11, textDark), deck.WithVAlign(deck.VAlignTop), deck.WithLineSpacing(1.5)))
	p.heading(0.5, 3.25, 3.9, 0.3, "例 / new-component", 11, teal)
	p.code(box(0.4, 3.6, 4.1, 1.3), box(0.55, 3.65, 3.8, 1.15), promptExample, 10)

	p.card(5.0, 0.9, 4.6, 4.3)
	p.bar(5.0, 0.9, 4.6, 0.5, navyMid)
	p.add(deck.Text(5.15, 0.9, 4.3, 0.5, "手法 6 — Custom Agents (カスタムエージェント)",
		bold(fontTitle, 12.5, white), deck.WithVAlign(deck.VAlignMiddle)))
	p.add(deck.Runs(5.2, 1.5, 4.2, 1.7, deck.Bullets([]string{
		"Markdown ファイルで定義する「専門特化型 AI ペルソナ」",
		"使用するツール・モデル・振る舞いを細かく制御",
		"サブエージェントとして他のエージェントから呼び出し可能",
		"DB 管理・フロントエンド開発・プランニングなど役割別に作成",
	}), font(fontBody, 11, textDark), deck.WithVAlign(deck.VAlignTop), deck.WithLineSpacing(1.5)))
	p.heading(5.2, 3.25, 4.2, 0.3, "Prompt Files vs Custom Agents", 11, navyMid)
	p.add(deck.Table(5.1, 3.6, 4.5, 1.6, promptVsAgentRows(),
		deck.TableFont(font(fontBody, 10, textDark)),
		deck.CellBorder(tableLine, 0.5),
		deck.TableFill(white),
		deck.RowHeight(0.4),
		deck.ColumnWidths(1.7, 1.4, 1.4),
	))

	p.footer(false)
}

func setupStepsSlide(b *deck.Builder, num, total int) {
	const heading = "GitHub Copilot (VS Code) 推奨セットアップ手順"
	p := newPage(b, navy, num, total, heading)
	p.heading(0.5, 0.25, 9, 0.6, heading, 20, white)

	// timeline rail behind the step markers
	p.bar(1.7, 1.1, 0.06, 3.8, teal)

	for _, st := range setupSteps {
		p.add(deck.Ellipse(1.3, st.y+0.05, 0.5, 0.5, deck.Fill(st.color), deck.Line(st.color, 0)))
		p.add(deck.Text(1.3, st.y+0.05, 0.5, 0.5, st.num, bold(fontTitle, 14, navy),
			deck.WithAlign(deck.AlignCenter), deck.WithVAlign(deck.VAlignMiddle)))
		p.heading(2.1, st.y, 7.5, 0.38, st.title, 13.5, st.color)
		p.add(deck.Text(2.1, st.y+0.42, 7.5, 0.55, st.body, font(fontBody, 11, darkBody)))
	}

	p.footer(true)
}

func writingTipsSlide(b *deck.Builder, num, total int) {
	p := newPage(b, lightBg, num, total, "効果的な指示の書き方 — 5 つのコツ")
	p.header(teal, "効果的な指示の書き方 — 5 つのコツ", 20)

	const w, h = 3.1, 2.1
	for i, t := range writingTips {
		x, y := tipGrid.Cell(i)
		p.card(x, y, w, h)
		p.heading(x+0.12, y+0.12, 0.6, 0.45, t.num, 20, teal)
		p.heading(x+0.12, y+0.62, w-0.24, 0.38, t.title, 12, textDark)
		p.add(deck.Text(x+0.12, y+1.05, w-0.24, 0.9, t.body, font(fontBody, 10, textMid)))
	}

	p.footer(false)
}

func summarySlide(b *deck.Builder, num, total int) {
	p := newPage(b, navyMid, num, total, "まとめ")
	p.bar(0, 0, 0.18, canvasH, mint)
	p.heading(0.5, 0.35, 9, 0.55, "まとめ", 24, mint)

	for i, it := range summaryItems {
		y := 1.05 + float64(i)*0.84
		p.bar(0.45, y, 0.06, 0.56, teal)
		p.heading(0.7, y+0.02, 9.0, 0.28, it.label, 12.5, seafoam)
		p.add(deck.Text(0.7, y+0.3, 9.0, 0.28, it.text, font(fontBody, 11, darkBody)))
	}

	p.footer(true)
}

func referencesSlide(b *deck.Builder, num, total int) {
	p := newPage(b, navy, num, total, "参考リンク")
	p.header(teal, "参考リンク", 20)

	const w, h = 4.5, 2.0
	for i, g := range referenceLinks {
		x, y := linkGrid.Cell(i)
		p.card(x, y, w, h)
		p.bar(x, y, w, 0.38, navyMid)
		p.add(deck.Text(x+0.1, y, 4.3, 0.38, g.category,
			bold(fontTitle, 12, seafoam), deck.WithVAlign(deck.VAlignMiddle)))
		p.add(deck.Runs(x+0.1, y+0.45, 4.2, 1.45, deck.Bullets(g.items),
			font(fontBody, 10, textDark), deck.WithVAlign(deck.VAlignTop), deck.WithLineSpacing(1.4)))
	}

	p.footer(true)
}
