package render

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrPDFUnavailable is returned when no Chrome or Chromium binary can be
// found. Callers surface it to the user and abort the export; stored data
// is unaffected.
var ErrPDFUnavailable = errors.New("pdf rendering unavailable: no chrome or chromium binary found")

// A4 in inches and the CSS pixel height of one printed page at 96dpi.
const (
	pdfPaperWidthIn  = 8.27
	pdfPaperHeightIn = 11.69
	pdfPageHeightPx  = pdfPaperHeightIn * 96
)

var chromeCandidates = []string{
	"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "chrome",
}

// PDFRenderer prints rendered HTML to an A4 PDF through headless Chrome.
type PDFRenderer struct {
	chromePath string
	timeout    time.Duration
}

// NewPDFRenderer builds a renderer. chromePath may be empty, in which case
// the binary is resolved from PATH at render time.
func NewPDFRenderer(chromePath string, timeout time.Duration) *PDFRenderer {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &PDFRenderer{chromePath: chromePath, timeout: timeout}
}

// resolveChrome locates the browser binary or reports ErrPDFUnavailable.
func (r *PDFRenderer) resolveChrome() (string, error) {
	if r.chromePath != "" {
		if _, err := os.Stat(r.chromePath); err != nil {
			return "", fmt.Errorf("%w: configured path %q: %v", ErrPDFUnavailable, r.chromePath, err)
		}
		return r.chromePath, nil
	}
	for _, candidate := range chromeCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}
	return "", ErrPDFUnavailable
}

// RenderPDF prints the given HTML to PDF. Trailing pages left fully blank by
// pagination overflow are trimmed: the content height is measured in the
// page session and only the occupied page range is printed.
func (r *PDFRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	chromePath, err := r.resolveChrome()
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromePath),
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, r.timeout)
	defer cancelRun()

	tmpDir, err := os.MkdirTemp("", "resume-pdf-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write page: %w", err)
	}

	var pdf []byte
	var contentHeightPx float64
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(`document.documentElement.scrollHeight`, &contentHeightPx),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = printParams(contentHeightPx).Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to print pdf: %w", err)
	}
	return pdf, nil
}

// printParams builds the PrintToPDF call for a measured content height.
// Margins must stay zero: the page estimate assumes one printed page holds
// exactly pdfPageHeightPx of content at the screen layout width, which only
// holds when the printable area is the full sheet.
func printParams(contentHeightPx float64) *page.PrintToPDFParams {
	pages := int(math.Ceil(contentHeightPx / pdfPageHeightPx))
	if pages < 1 {
		pages = 1
	}
	return page.PrintToPDF().
		WithPrintBackground(true).
		WithPaperWidth(pdfPaperWidthIn).
		WithPaperHeight(pdfPaperHeightIn).
		WithMarginTop(0).
		WithMarginBottom(0).
		WithMarginLeft(0).
		WithMarginRight(0).
		WithPageRanges(fmt.Sprintf("1-%d", pages))
}
