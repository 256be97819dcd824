package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/yuyalush/agent-instructions-research/config"
	"github.com/yuyalush/agent-instructions-research/database"
	"github.com/yuyalush/agent-instructions-research/dbpool"
	"github.com/yuyalush/agent-instructions-research/deck"
	"github.com/yuyalush/agent-instructions-research/export"
	"github.com/yuyalush/agent-instructions-research/i18n"
	"github.com/yuyalush/agent-instructions-research/logger"
	"github.com/yuyalush/agent-instructions-research/slides"
)

// App runs one deck build: render, write, and the optional exports
type App struct {
	cfg      config.Config
	logger   *logger.Logger
	tr       *i18n.Translator
	renderer *export.PPTXRenderer
}

// NewApp creates an App for cfg
func NewApp(cfg config.Config, l *logger.Logger) *App {
	var opts []export.RendererOption
	if cfg.EastAsianFont != "" {
		opts = append(opts, export.WithEastAsianFont(cfg.EastAsianFont))
	}
	return &App{
		cfg:      cfg,
		logger:   l,
		tr:       i18n.NewTranslator(i18n.ParseLanguage(cfg.Language)),
		renderer: export.NewPPTXRenderer(opts...),
	}
}

// Log writes a translated status line
func (a *App) Log(key string, params ...interface{}) {
	a.logger.Log(a.tr.T(key, params...))
}

// Run builds the deck and writes every configured output. The build is
// recorded in the history database when one is configured, failed or not.
func (a *App) Run(ctx context.Context) (err error) {
	started := time.Now()
	b := slides.New()
	d := b.Deck()
	var size int64

	defer func() {
		if a.cfg.HistoryDir == "" {
			return
		}
		// a cancelled build is still recorded
		hctx := context.WithoutCancel(ctx)
		if herr := a.recordHistory(hctx, d.Structure(), size, started, err); herr != nil {
			a.logger.Errorf("%s", a.tr.T("history.failed", herr))
		}
	}()

	a.Log("run.building", len(d.Slides))
	data, err := b.Finalize(ctx, a.renderer)
	if err != nil {
		return WrapError("Deck", "Render", err)
	}

	if err := writeFile(a.cfg.Output, data); err != nil {
		return WrapError("Deck", "Write", err)
	}
	size = int64(len(data))
	a.Log("run.size", size)

	if a.cfg.Verify {
		if err := a.verify(d); err != nil {
			return WrapError("Deck", "Verify", err)
		}
	}

	if err := a.exportImagesAndPDF(ctx, d); err != nil {
		return err
	}

	if a.cfg.Notes != "" {
		out, err := export.NewNotesPDFService(a.cfg.FontDirs...).Export(d)
		if err == nil {
			err = writeFile(a.cfg.Notes, out)
		}
		if err != nil {
			return WrapError("Export", "Notes", err)
		}
		a.Log("export.notes", a.cfg.Notes)
	}

	if a.cfg.Outline != "" {
		out, err := export.NewOutlineService().Export(d)
		if err == nil {
			err = writeFile(a.cfg.Outline, out)
		}
		if err != nil {
			return WrapError("Export", "Outline", err)
		}
		a.Log("export.outline", a.cfg.Outline)
	}

	if a.cfg.Handout != "" {
		out, err := export.NewHandoutDocService().Export(d)
		if err == nil {
			err = writeFile(a.cfg.Handout, out)
		}
		if err != nil {
			return WrapError("Export", "Handout", err)
		}
		a.Log("export.handout", a.cfg.Handout)
	}

	a.Log("run.saved", a.cfg.Output)
	return nil
}

func (a *App) verify(d *deck.Deck) error {
	a.Log("verify.start", a.cfg.Output)
	rep, err := export.Inspect(a.cfg.Output)
	if err != nil {
		return err
	}
	if err := export.Verify(d, rep); err != nil {
		return err
	}
	a.Log("verify.ok", rep.Structure.Slides, len(d.Structure().TableRows))
	return nil
}

// exportImagesAndPDF writes slide PNGs and the handout PDF built from them.
// Without an image directory the PDF is laid out from a temporary one.
func (a *App) exportImagesAndPDF(ctx context.Context, d *deck.Deck) error {
	if a.cfg.ImagesDir == "" && a.cfg.PDF == "" {
		return nil
	}

	dir := a.cfg.ImagesDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "deckgen-slides-*")
		if err != nil {
			return WrapError("Export", "Images", WrapOperationError("create temp directory", err))
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}

	exporter := export.NewImageExporter(a.renderer, a.cfg.ImageWidth, a.cfg.FontDirs...)
	paths, err := exporter.Export(ctx, d, dir)
	if err != nil {
		return WrapError("Export", "Images", err)
	}
	if a.cfg.ImagesDir != "" {
		for i, p := range paths {
			a.Log("export.image", i+1, p)
		}
		a.Log("export.images", len(paths), a.cfg.ImagesDir)
	}

	if a.cfg.PDF == "" {
		return nil
	}
	images := make([][]byte, 0, len(paths))
	for _, p := range paths {
		img, err := os.ReadFile(p)
		if err != nil {
			return WrapError("Export", "PDF", WrapOperationErrorf("read %s", err, p))
		}
		images = append(images, img)
	}
	out, err := export.NewPDFHandoutService().Export(images)
	if err == nil {
		err = writeFile(a.cfg.PDF, out)
	}
	if err != nil {
		return WrapError("Export", "PDF", err)
	}
	a.Log("export.pdf", a.cfg.PDF)
	return nil
}

func (a *App) recordHistory(ctx context.Context, st deck.Structure, size int64, started time.Time, runErr error) error {
	m := dbpool.New(a.logger.Log)
	db, err := database.InitDB(ctx, m, a.cfg.HistoryDir)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := database.NewHistoryService(db).Record(ctx, database.NewRun(a.cfg.Output, st, size, started, runErr))
	if err != nil {
		return err
	}
	a.Log("history.recorded", id, filepath.Join(a.cfg.HistoryDir, database.HistoryFile))
	return nil
}

// ListHistory logs the newest limit recorded builds. The database is opened
// read-only and never created.
func (a *App) ListHistory(ctx context.Context, limit int) error {
	if a.cfg.HistoryDir == "" {
		return WrapError("History", "List", ErrNoHistoryDir)
	}
	db, err := database.OpenHistory(ctx, dbpool.New(a.logger.Log), a.cfg.HistoryDir)
	if err != nil {
		return WrapError("History", "List", err)
	}
	defer db.Close()

	runs, err := database.NewHistoryService(db).List(ctx, limit)
	if err != nil {
		return WrapError("History", "List", err)
	}
	if len(runs) == 0 {
		a.Log("history.empty", a.cfg.HistoryDir)
		return nil
	}
	for _, r := range runs {
		a.Log("history.entry", r.StartedAt.Format(time.DateTime), r.Status, r.Output,
			r.Slides, r.Elements, r.Bytes, r.Duration.Round(time.Millisecond))
		if r.Error != "" {
			a.Log("history.entry_error", r.Error)
		}
	}
	return nil
}

// writeFile writes data to path, creating the parent directory
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return WrapOperationErrorf("create directory %s", err, dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return WrapOperationErrorf("write %s", err, path)
	}
	return nil
}
