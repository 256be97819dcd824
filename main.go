package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/yuyalush/agent-instructions-research/config"
	"github.com/yuyalush/agent-instructions-research/i18n"
	"github.com/yuyalush/agent-instructions-research/logger"
	"github.com/yuyalush/agent-instructions-research/slides"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses flags over the loaded config and builds the deck. It returns
// the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("deckgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "JSON config file (default ./deckgen.json if present)")
	out := fs.String("out", "", "Output .pptx path")
	images := fs.String("images", "", "Directory for slide PNGs")
	pdf := fs.String("pdf", "", "Handout PDF path")
	notes := fs.String("notes", "", "Notes PDF path (slide text, needs a Japanese TrueType font)")
	outline := fs.String("outline", "", "Outline workbook (.xlsx) path")
	handout := fs.String("handout", "", "Handout document (.docx) path")
	history := fs.String("history", "", "Build history directory")
	verify := fs.Bool("verify", false, "Read the written deck back and check its structure")
	listHistory := fs.Int("list-history", 0, "List the newest N recorded builds from -history and exit")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	errOut := styledWriter{w: stderr, style: failStyle}

	cfg, err := config.Load(*configPath, slides.OutputFile)
	if err != nil {
		fmt.Fprintln(errOut, i18n.T("run.config_failed", err))
		return 1
	}

	// explicitly set flags win over file and environment
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.Output = *out
		case "images":
			cfg.ImagesDir = *images
		case "pdf":
			cfg.PDF = *pdf
		case "notes":
			cfg.Notes = *notes
		case "outline":
			cfg.Outline = *outline
		case "handout":
			cfg.Handout = *handout
		case "history":
			cfg.HistoryDir = *history
		case "verify":
			cfg.Verify = *verify
		}
	})

	i18n.SyncLanguageFromConfig(&cfg)

	l := logger.NewLogger(styledWriter{w: stdout, style: okStyle}, errOut)
	defer l.Close()
	if cfg.LogDir != "" {
		if err := l.Init(cfg.LogDir); err != nil {
			l.Errorf("%s", i18n.T("run.log_failed", err))
			return 1
		}
	}

	app := NewApp(cfg, l)
	if *listHistory > 0 {
		if err := app.ListHistory(ctx, *listHistory); err != nil {
			l.Errorf("%s", i18n.T("run.failed", err))
			return 1
		}
		return 0
	}
	if err := app.Run(ctx); err != nil {
		l.Errorf("%s", i18n.T("run.failed", err))
		return 1
	}
	return 0
}
