// Package labels renders shipping address labels to PDF through a
// headless Chrome instance, one 4x6 inch label per page, sized for
// common thermal label printers.
package labels

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"

	"github.com/manualpress/manualpress"
	"github.com/manualpress/manualpress/ebay"
)

// Label page size in inches.
const (
	labelWidth  = 4.0
	labelHeight = 6.0
)

// Label is one shipping label.
type Label struct {
	// OrderID is printed in small type at the label's bottom edge for
	// matching labels to orders. Optional.
	OrderID string

	// Lines are the address lines, top to bottom.
	Lines []string
}

// FromOrders builds one label per order that carries a shipping
// address. Orders without one are skipped.
func FromOrders(orders []ebay.Order) []Label {
	var out []Label
	for i := range orders {
		st, ok := orders[i].ShipToAddress()
		if !ok {
			logrus.WithField("order", orders[i].OrderID).Warn("order has no shipping address, skipping label")
			continue
		}
		out = append(out, Label{
			OrderID: orders[i].OrderID,
			Lines:   st.Lines(),
		})
	}
	return out
}

var labelTmpl = template.Must(template.New("labels").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { margin: 0; }
  body { margin: 0; font-family: Helvetica, Arial, sans-serif; }
  .label {
    width: 4in; height: 6in;
    box-sizing: border-box;
    padding: 0.35in;
    page-break-after: always;
    display: flex; flex-direction: column;
  }
  .address { margin-top: 1.2in; font-size: 20pt; line-height: 1.35; }
  .order { margin-top: auto; font-size: 8pt; color: #444; }
</style>
</head>
<body>
{{- range . }}
<div class="label">
  <div class="address">
  {{- range .Lines }}
    <div>{{ . }}</div>
  {{- end }}
  </div>
  {{- if .OrderID }}
  <div class="order">{{ .OrderID }}</div>
  {{- end }}
</div>
{{- end }}
</body>
</html>
`))

// renderHTML produces the label sheet markup.
func renderHTML(ls []Label) (string, error) {
	var b strings.Builder
	if err := labelTmpl.Execute(&b, ls); err != nil {
		return "", fmt.Errorf("labels: rendering template: %w", err)
	}
	return b.String(), nil
}

// Renderer turns labels into PDF pages.
//
// A Renderer manages a headless browser instance that is reused across
// renders. It is safe for concurrent use. Call [Renderer.Close] when
// done to release browser resources.
type Renderer struct {
	cfg           rendererConfig
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc

	mu     sync.Mutex
	closed bool
}

// NewRenderer creates a Renderer with the given options.
//
// It starts a headless browser in the background. The caller must call
// [Renderer.Close] when finished.
func NewRenderer(opts ...Option) (*Renderer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.chromePath == "" && cfg.autoDownload {
		path, err := resolveBrowser()
		if err != nil {
			return nil, err
		}
		cfg.chromePath = path
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("headless", cfg.headless),
	)
	if cfg.chromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.chromePath))
	}
	if cfg.noSandbox {
		allocOpts = append(allocOpts, chromedp.Flag("no-sandbox", true))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the browser eagerly so errors surface at creation time.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("labels: starting browser: %w", err)
	}

	return &Renderer{
		cfg:           cfg,
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
	}, nil
}

// Close releases all resources held by the Renderer, including the
// browser process. Close is idempotent.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	r.browserCancel()
	r.allocCancel()
	return nil
}

// Render produces one 4x6 inch PDF page per label.
func (r *Renderer) Render(ctx context.Context, ls []Label) (*manualpress.Result, error) {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return nil, fmt.Errorf("labels: renderer is closed")
	}
	if len(ls) == 0 {
		return nil, fmt.Errorf("labels: nothing to render")
	}

	html, err := renderHTML(ls)
	if err != nil {
		return nil, err
	}

	f, err := os.CreateTemp("", "labels-*.html")
	if err != nil {
		return nil, fmt.Errorf("labels: creating temp file: %w", err)
	}
	name := f.Name()
	defer os.Remove(name)

	if _, err := f.WriteString(html); err != nil {
		f.Close()
		return nil, fmt.Errorf("labels: writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("labels: closing temp file: %w", err)
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		return nil, fmt.Errorf("labels: resolving path: %w", err)
	}

	if r.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.timeout)
		defer cancel()
	}

	tabCtx, tabCancel := chromedp.NewContext(r.browserCtx)
	defer tabCancel()

	var buf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+abs),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPaperWidth(labelWidth).
				WithPaperHeight(labelHeight).
				WithMarginTop(0).
				WithMarginRight(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	); err != nil {
		return nil, fmt.Errorf("labels: render failed: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"labels": len(ls),
		"bytes":  len(buf),
	}).Debug("rendered shipping labels")

	return manualpress.NewResult(buf), nil
}

// Render produces a label PDF using a temporary [Renderer]. For
// repeated use, create a [Renderer] with [NewRenderer] to reuse the
// browser instance.
func Render(ctx context.Context, ls []Label, opts ...Option) (*manualpress.Result, error) {
	r, err := NewRenderer(opts...)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Render(ctx, ls)
}
