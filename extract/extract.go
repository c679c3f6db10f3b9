// Package extract pulls text out of the recipient PDF. Three interchangeable
// backends produce the same shape of output (reconstructed table rows) from
// very different sources: the MuPDF text layer, positioned text fragments,
// or OCR over page rasters. Under the auto method, backends are tried in a
// fixed order and the first one whose rows parse into at least one recipient
// wins.
package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/observability"
	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/ocr"
)

// Method selects an extraction backend.
type Method string

const (
	// MethodAuto tries MethodMuPDF, then MethodLayout, then MethodOCR,
	// accepting the first backend whose output parses downstream.
	MethodAuto Method = "auto"
	// MethodMuPDF extracts the text layer per page via MuPDF.
	MethodMuPDF Method = "mupdf"
	// MethodLayout extracts positioned text fragments and recomposes rows
	// from their coordinates.
	MethodLayout Method = "layout"
	// MethodOCR rasterizes each page and recognizes the text optically. It
	// is markedly slower and a deliberate last resort.
	MethodOCR Method = "ocr"
)

// methodAliases accepts the method names of the original converter so
// existing invocations keep working.
var methodAliases = map[string]Method{
	"pymupdf":    MethodMuPDF,
	"pdfplumber": MethodLayout,
}

// ParseMethod resolves a method name or legacy alias.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodAuto, MethodMuPDF, MethodLayout, MethodOCR:
		return Method(s), nil
	}
	if m, ok := methodAliases[s]; ok {
		return m, nil
	}
	return "", fmt.Errorf("unknown extraction method %q (want auto, mupdf, layout or ocr)", s)
}

// Backend is one extraction strategy: given a PDF path it returns the
// document's reconstructed table rows in page order.
type Backend interface {
	Name() string
	Lines(ctx context.Context, path string) ([]string, error)
}

var (
	// ErrExtractionFailed means no backend could read the document at all.
	ErrExtractionFailed = errors.New("no extraction backend could read the document")
	// ErrNoRecipients means extraction worked but no backend produced rows
	// that parse into recipients.
	ErrNoRecipients = errors.New("no recipient rows found")
)

// Accept judges whether a backend's rows are usable downstream. Under auto,
// a backend whose output is rejected triggers fallback to the next one
// instead of being accepted silently.
type Accept func(lines []string) bool

// Extractor runs extraction backends against a document.
type Extractor struct {
	// Logger receives per-backend progress; nil means no logging.
	Logger observability.Logger
	// Engine is the OCR engine for the OCR backend; nil selects the
	// process default (Tesseract when the tesseract package is imported).
	Engine ocr.Engine
	// OCROptions are applied to every OCR input (language hints etc).
	OCROptions []ocr.InputOption
}

func (e *Extractor) logger() observability.Logger {
	if e.Logger == nil {
		return observability.NopLogger{}
	}
	return e.Logger
}

// Backends returns the backend sequence for a method. Auto yields all three
// in fallback order.
func (e *Extractor) Backends(method Method) ([]Backend, error) {
	engine := e.Engine
	if engine == nil {
		engine = ocr.DefaultEngine()
	}
	switch method {
	case MethodMuPDF:
		return []Backend{&muPDFBackend{}}, nil
	case MethodLayout:
		return []Backend{&layoutBackend{}}, nil
	case MethodOCR:
		return []Backend{&ocrBackend{engine: engine, options: e.OCROptions}}, nil
	case MethodAuto:
		return []Backend{
			&muPDFBackend{},
			&layoutBackend{},
			&ocrBackend{engine: engine, options: e.OCROptions},
		}, nil
	}
	return nil, fmt.Errorf("unknown extraction method %q", method)
}

// Extract runs the method's backends in order and returns the first accepted
// row set along with the backend name that produced it. Backend errors are
// collected and only become fatal once every backend has been exhausted;
// ErrNoRecipients is returned when at least one backend could read the file
// but none produced acceptable rows.
func (e *Extractor) Extract(ctx context.Context, path string, method Method, accept Accept) ([]string, string, error) {
	backends, err := e.Backends(method)
	if err != nil {
		return nil, "", err
	}
	return e.run(ctx, path, backends, accept)
}

func (e *Extractor) run(ctx context.Context, path string, backends []Backend, accept Accept) ([]string, string, error) {
	log := e.logger()

	var failures []error
	for _, b := range backends {
		log.Debug("trying extraction backend", observability.String("backend", b.Name()))
		lines, err := b.Lines(ctx, path)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, "", err
			}
			log.Warn("extraction backend failed",
				observability.String("backend", b.Name()),
				observability.Error("err", err))
			failures = append(failures, fmt.Errorf("%s: %w", b.Name(), err))
			continue
		}
		if len(lines) == 0 || (accept != nil && !accept(lines)) {
			log.Debug("backend produced no usable rows",
				observability.String("backend", b.Name()),
				observability.Int("lines", len(lines)))
			continue
		}
		log.Debug("backend accepted",
			observability.String("backend", b.Name()),
			observability.Int("lines", len(lines)))
		return lines, b.Name(), nil
	}

	if len(failures) == len(backends) {
		return nil, "", errors.Join(append([]error{ErrExtractionFailed}, failures...)...)
	}
	return nil, "", ErrNoRecipients
}

// Validate confirms the file is a PDF readable by the toolchain before any
// backend runs, and reports its page count.
func Validate(path string) (int, error) {
	if err := api.ValidateFile(path, nil); err != nil {
		return 0, fmt.Errorf("validate %s: %w", path, err)
	}
	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count %s: %w", path, err)
	}
	return pages, nil
}
