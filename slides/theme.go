package slides

import "github.com/yuyalush/agent-instructions-research/deck"

// Teal Trust palette
const (
	teal     deck.Color = "028090"
	seafoam  deck.Color = "00A896"
	mint     deck.Color = "02C39A"
	navy     deck.Color = "0D2137"
	navyMid  deck.Color = "163354"
	lightBg  deck.Color = "F0F9FA"
	white    deck.Color = "FFFFFF"
	textDark deck.Color = "1A202C"
	textMid  deck.Color = "334155"
	textMute deck.Color = "64748B"
	accent   deck.Color = "F97316"

	cardLine    deck.Color = "E2E8F0"
	tableLine   deck.Color = "CBD5E1"
	codeBg      deck.Color = "1E293B"
	codeLine    deck.Color = "334155"
	codeText    deck.Color = "A5F3FC"
	darkMute    deck.Color = "607080"
	darkBody    deck.Color = "94A3B8"
	badgeAmber  deck.Color = "FDE68A"
	badgeAmberT deck.Color = "78350F"
)

const (
	fontTitle = "Calibri"
	fontBody  = "Calibri"
	fontCode  = "Consolas"
)

// Document metadata and output name.
const (
	Author     = "GitHub Copilot"
	Title      = "AGENTS.md を活用したエージェント指示・スキル設定の手法まとめ"
	OutputFile = "AGENTS_md_手法まとめ.pptx"
	TotalPages = 12
)

const (
	canvasW = deck.CanvasWidth
	canvasH = deck.CanvasHeight
)

func font(face string, size float64, color deck.Color) deck.FontSpec {
	return deck.FontSpec{Face: face, Size: size, Color: color}
}

func bold(face string, size float64, color deck.Color) deck.FontSpec {
	return deck.FontSpec{Face: face, Size: size, Bold: true, Color: color}
}

var cardShadow = deck.Shadow{Color: "000000", Blur: 6, Offset: 2, Angle: 135, Opacity: 0.08}
