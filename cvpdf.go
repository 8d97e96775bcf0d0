// Package cvpdf generates a two-column curriculum vitae PDF from a JSON or
// YAML data file.
//
// A Generator wires the pipeline together: the data file is loaded and
// validated (package resume), turned into a composition tree (compose),
// paginated into PDF pages (render) and optionally followed by attachment
// PDFs (pageops).
//
// Example:
//
//	gen := cvpdf.New(
//	    cvpdf.WithPageSize("A4"),
//	    cvpdf.WithContactCode(contactcode.KindQR),
//	)
//	report, err := gen.Generate("cv_data.json", cvpdf.DefaultOutput)
package cvpdf

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/lvillar/cvpdf/compose"
	"github.com/lvillar/cvpdf/contactcode"
	"github.com/lvillar/cvpdf/imageres"
	"github.com/lvillar/cvpdf/layout"
	"github.com/lvillar/cvpdf/pageops"
	"github.com/lvillar/cvpdf/render"
	"github.com/lvillar/cvpdf/resume"
)

// DefaultOutput is the output file name used when none is given.
const DefaultOutput = "Curriculum_Vitae.pdf"

// cmToPt converts centimeters to PDF points.
const cmToPt = 72 / 2.54

// Generator produces CV documents. It is safe to reuse for several
// documents but not for concurrent use.
type Generator struct {
	cfg      config
	composer *compose.Composer
	backend  *render.Backend
}

// Result is a rendered document.
type Result struct {
	PDF      []byte
	Pages    int      // total pages, attachments included
	CVPages  int      // pages produced by the CV itself
	Appended []string // attachment files appended, in order
}

// Report describes a written document.
type Report struct {
	Output   string // absolute path when it can be determined
	Pages    int
	CVPages  int
	Appended []string
}

// New returns a Generator configured with opts.
func New(opts ...Option) *Generator {
	cfg := config{
		fs:       afero.NewOsFs(),
		log:      slog.Default(),
		pageSize: "A4",
		marginCM: 1.5,
		contact:  contactcode.KindNone,
		title:    compose.DocumentTitle,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	photos := imageres.New(imageres.WithFS(cfg.fs), imageres.WithLogger(cfg.log))
	composer := compose.New(photos,
		compose.WithLogger(cfg.log),
		compose.WithContactCode(cfg.contact),
		compose.WithTitle(cfg.title),
		compose.WithPageSize(cfg.pageSize),
		compose.WithMargins(layout.Uniform(cfg.marginCM*cmToPt)),
	)

	renderOpts := []render.Option{render.WithFontDir(cfg.fontDir)}
	if cfg.utf8 != nil {
		renderOpts = append(renderOpts, render.WithUTF8Font(render.UTF8Font{
			Family:  cfg.utf8.family,
			Regular: cfg.utf8.regular,
			Bold:    cfg.utf8.bold,
		}))
	}

	return &Generator{cfg: cfg, composer: composer, backend: render.New(renderOpts...)}
}

// Load reads and validates the data file at path.
func (g *Generator) Load(path string) (*resume.Document, error) {
	doc, err := resume.Load(g.cfg.fs, path)
	if err != nil {
		return nil, newError(loadKind(err), "Load", err)
	}
	return doc, nil
}

// Compose builds the composition tree for doc without rendering it.
func (g *Generator) Compose(doc *resume.Document) *layout.Document {
	return g.composer.Compose(doc)
}

// Render produces the PDF for doc, followed by its attachments when an
// attachment directory is configured.
func (g *Generator) Render(doc *resume.Document) (*Result, error) {
	out, err := g.backend.Flow(g.Compose(doc))
	if err != nil {
		return nil, newError(KindRender, "Render", err)
	}
	res := &Result{PDF: out.PDF, Pages: out.Pages, CVPages: out.Pages}
	if g.cfg.attachDir == "" {
		return res, nil
	}

	docs, err := g.attachments(doc.Attachments)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return res, nil
	}

	var buf bytes.Buffer
	n, err := pageops.Append(&buf, out.PDF, docs...)
	if err != nil {
		return nil, newError(KindAttachment, "Append", err)
	}
	res.PDF = buf.Bytes()
	res.Pages = n
	for _, d := range docs {
		res.Appended = append(res.Appended, d.Name)
	}
	return res, nil
}

// Generate loads dataPath, renders it and writes the PDF to outputPath.
func (g *Generator) Generate(dataPath, outputPath string) (*Report, error) {
	if outputPath == "" {
		outputPath = DefaultOutput
	}

	doc, err := g.Load(dataPath)
	if err != nil {
		return nil, err
	}
	res, err := g.Render(doc)
	if err != nil {
		return nil, err
	}
	if err := afero.WriteFile(g.cfg.fs, outputPath, res.PDF, 0o644); err != nil {
		return nil, newError(KindIO, "Write", err)
	}

	report := &Report{Output: outputPath, Pages: res.Pages, CVPages: res.CVPages, Appended: res.Appended}
	if abs, err := filepath.Abs(outputPath); err == nil {
		report.Output = abs
	}
	g.cfg.log.Info("curriculum vitae written", "path", report.Output, "pages", report.Pages)
	return report, nil
}

// attachments reads the PDF files for entries. An entry matches
// <dir>/<entry> or <dir>/<entry>.pdf; entries without a file are skipped
// with a warning.
func (g *Generator) attachments(entries []string) ([]pageops.Document, error) {
	var docs []pageops.Document
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		path, ok := g.findAttachment(entry)
		if !ok {
			g.cfg.log.Warn("attachment file not found, not appended", "attachment", entry, "dir", g.cfg.attachDir)
			continue
		}
		data, err := afero.ReadFile(g.cfg.fs, path)
		if err != nil {
			return nil, newError(KindIO, "ReadAttachment", err)
		}
		docs = append(docs, pageops.Document{Name: path, Data: data})
	}
	return docs, nil
}

func (g *Generator) findAttachment(entry string) (string, bool) {
	candidates := []string{filepath.Join(g.cfg.attachDir, entry)}
	if !strings.EqualFold(filepath.Ext(entry), ".pdf") {
		candidates = append(candidates, candidates[0]+".pdf")
	}
	for _, c := range candidates {
		if info, err := g.cfg.fs.Stat(c); err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}
