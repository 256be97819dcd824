package slides

import "github.com/yuyalush/agent-instructions-research/deck"

// Fixed label lists that are expanded into repeated bullets and cards.

var supportedTools = []string{
	"GitHub Copilot (VS Code)",
	"Claude Code",
	"Cursor",
	"Goose",
	"TRAE",
	"Spring AI",
	"Databricks",
	"その他多数",
}

type cardContent struct {
	title string
	color deck.Color
	items []string
}

var copilotInstructionCards = []cardContent{
	{title: "用途", color: teal, items: []string{"コーディング規約・命名規則", "利用技術スタックの宣言", "アーキテクチャパターン", "セキュリティ要件・エラー処理"}},
	{title: "使い方", color: seafoam, items: []string{"① .github/ ディレクトリを作成", "② copilot-instructions.md を作成", "または /init コマンドで自動生成", "全チャットリクエストに自動適用"}},
	{title: "特徴", color: accent, items: []string{"VS Code / GitHub.com 両対応", "Organization レベルでも設定可", "他ツールには認識されない", "他の指示ファイルと組み合わせ可"}},
}

type setupStep struct {
	num   string
	title string
	color deck.Color
	y     float64
	body  string
}

var setupSteps = []setupStep{
	{num: "1", title: "基本設定", color: mint, y: 1.0, body: "チャットで /init と入力 → ワークスペースを解析して\n.github/copilot-instructions.md を自動生成"},
	{num: "2", title: "ファイル別ルール追加", color: seafoam, y: 2.1, body: "*.instructions.md で言語・フレームワーク別の規約を追加\napplyTo: '**/*.py' のように glob で自動適用"},
	{num: "3", title: "タスク自動化", color: teal, y: 3.2, body: "Prompt Files でよく行う作業をスラッシュコマンド化\nMCP サーバーで外部サービス（Issue トラッカー等）と連携"},
	{num: "4", title: "スキル化", color: accent, y: 4.3, body: "Agent Skills で専門ワークフローをパッケージ化\nチーム・組織間で再利用可能なスキルとして共有"},
}

type tip struct {
	num   string
	title string
	body  string
}

var writingTips = []tip{
	{num: "01", title: "短く・単一目的に", body: "各指示は 1 つのシンプルな文にする。複数のルールは複数の指示に分割する。"},
	{num: "02", title: "理由を明記する", body: "なぜか書くと AI がエッジケースで正しい判断をしやすい。\n例: 「date-fns を使うこと（moment.js は非推奨でバンドルサイズが増大するため）」"},
	{num: "03", title: "良い例・悪い例を示す", body: "抽象的なルールより具体的なコード例の方が効果的。"},
	{num: "04", title: "当たり前のことは書かない", body: "リンターやフォーマッターで自動強制できるルールは不要。非自明なプロジェクト固有情報を優先する。"},
	{num: "05", title: "プロジェクト固有情報を優先", body: "AI が一般知識では知り得ないアーキテクチャ・ライブラリ選択・チームの慣習を重点的に記述する。"},
}

// tipGrid lays the tip cards out three per row.
var tipGrid = deck.Grid{OriginX: 0.25, OriginY: 0.95, StepX: 3.25, StepY: 2.3, Columns: 3}

type summaryItem struct {
	label string
	text  string
}

var summaryItems = []summaryItem{
	{label: "AGENTS.md / Agent Skills", text: "他ツールと互換性が高いオープン標準。複数エージェント環境やチーム共有に最適。"},
	{label: "copilot-instructions.md", text: "GitHub Copilot に特化した最もシンプルな方法。/init で即座に生成できる。"},
	{label: "*.instructions.md", text: "ファイルタイプ・フレームワーク別に細かくルールを分けたい場合に有効。"},
	{label: "Prompt Files", text: "繰り返し作業をスラッシュコマンドに変換。チームの生産性向上に直結。"},
	{label: "Custom Agents", text: "複雑なマルチステップワークフローや役割分担型の開発に最適。"},
}

type linkGroup struct {
	category string
	items    []string
}

var referenceLinks = []linkGroup{
	{category: "標準・仕様", items: []string{"agents.md  ―  https://agents.md/", "agentskills.io  ―  https://agentskills.io/"}},
	{category: "GitHub", items: []string{"agentsmd/agents.md  ―  github.com/agentsmd/agents.md", "anthropics/skills  ―  github.com/anthropics/skills", "github/awesome-copilot  ―  github.com/github/awesome-copilot"}},
	{category: "VS Code ドキュメント", items: []string{"Customize AI  ―  code.visualstudio.com/docs/copilot/copilot-customization", "Custom instructions  ―  .../customization/custom-instructions", "Agent Skills  ―  .../customization/agent-skills"}},
	{category: "GitHub ドキュメント", items: []string{"Adding repository custom instructions  ―  docs.github.com"}},
}

// linkGrid lays the reference cards out two per row.
var linkGrid = deck.Grid{OriginX: 0.3, OriginY: 0.95, StepX: 4.9, StepY: 2.2, Columns: 2}

// comparisonRows is the six-approach matrix shown on the overview slide.
func comparisonRows() []deck.TableRow {
	return []deck.TableRow{
		deck.HeaderRow(teal, white, "手法", "適用タイミング", "他ツール互換", "ベストユースケース"),
		deck.Row("AGENTS.md", "常時", "✔ 高い", "マルチエージェント環境、モノレポ"),
		deck.Row("copilot-instructions.md", "常時", "— Copilot専用", "GitHub Copilot 単体利用"),
		deck.Row("*.instructions.md", "ファイルパターン合致時", "— VS Code/GitHub", "言語別・フレームワーク別規約"),
		deck.Row("Agent Skills (SKILL.md)", "タスク合致時（オンデマンド）", "✔ 高い", "専門ワークフロー、再利用可能な能力"),
		deck.Row("Prompt Files", "手動呼び出し時", "— VS Code専用", "繰り返しタスクの自動化"),
		deck.Row("Custom Agents", "エージェント選択時", "— VS Code専用", "役割別の専門エージェント"),
	}
}

func frontMatterRows() []deck.TableRow {
	return []deck.TableRow{
		deck.HeaderRow(teal, white, "キー", "説明"),
		deck.Row("name", "UI 表示名"),
		deck.Row("description", "ホバー時に表示される説明"),
		deck.Row("applyTo", "自動適用する glob パターン"),
	}
}

func promptVsAgentRows() []deck.TableRow {
	return []deck.TableRow{
		deck.HeaderRow(navyMid, white, "", "Prompt Files", "Custom Agents"),
		deck.Row("用途", "単発タスク", "複数ステップ"),
		deck.Row("呼び出し", "/ コマンド", "エージェント選択"),
		deck.Row("オーケストレーション", "なし", "サブエージェント可"),
	}
}

const instructionsExample = "---\n" +
	"name: 'Python Standards'\n" +
	"description: 'Python の規約'\n" +
	"applyTo: '**/*.py'\n" +
	"---\n\n" +
	"# Python コーディング規約\n" +
	"- PEP 8 スタイルガイドに従う\n" +
	"- 全関数に型ヒントを付ける\n" +
	"- public 関数に docstring を書く"

const skillTree = ".github/skills/\n" +
	"└── pptx/\n" +
	"    ├── SKILL.md   ← 必須\n" +
	"    ├── editing.md\n" +
	"    ├── scripts/\n" +
	"    │   ├── pack.py\n" +
	"    │   └── unpack.py\n" +
	"    └── examples/"

const skillHeader = "---\n" +
	"name: pptx\n" +
	"description: |\n" +
	"  .pptx ファイルに関わる\n" +
	"  すべての操作に使用\n" +
	"argument-hint:\n" +
	"  [file] [options]\n" +
	"user-invokable: true\n" +
	"---"

const promptExample = "---\nname: new-component\ndescription:\n  React コンポーネントの雛形生成\n---\n" +
	"TypeScript + Props 型定義 +\nStorybook を同時に作成"
