// Command fnb2investec converts an FNB recipients PDF export into Investec's
// beneficiary-import CSV format.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/extract"
	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/investec"
	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/observability"
	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/ocr"
	_ "github.com/ashleykleynhans/convert-fnb-recipients-to-investec/ocr/tesseract"
	"github.com/ashleykleynhans/convert-fnb-recipients-to-investec/recipients"
)

type options struct {
	pdfPath     string
	output      string
	method      extract.Method
	detectBank  bool
	defaultBank recipients.Bank
	lang        string
	verbose     bool
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fnb2investec: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "fnb2investec: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	var method, defaultBank string

	fs := flag.NewFlagSet("fnb2investec", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: fnb2investec [flags] <recipients.pdf>\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.output, "o", "investec-beneficiaries.csv", "Output CSV file path")
	fs.StringVar(&opts.output, "output", "investec-beneficiaries.csv", "Output CSV file path")
	fs.StringVar(&method, "m", "auto", "Extraction method: auto, mupdf, layout or ocr")
	fs.StringVar(&method, "method", "auto", "Extraction method: auto, mupdf, layout or ocr")
	fs.BoolVar(&opts.detectBank, "d", false, "Detect the bank from the account-number prefix")
	fs.BoolVar(&opts.detectBank, "detect-bank", false, "Detect the bank from the account-number prefix")
	fs.StringVar(&defaultBank, "b", "", "Force this bank (and its branch code) on every record")
	fs.StringVar(&defaultBank, "default-bank", "", "Force this bank (and its branch code) on every record")
	fs.StringVar(&opts.lang, "l", "eng", "OCR language hint")
	fs.StringVar(&opts.lang, "lang", "eng", "OCR language hint")
	fs.BoolVar(&opts.verbose, "v", false, "Print every extracted record and skip counts")
	fs.BoolVar(&opts.verbose, "verbose", false, "Print every extracted record and skip counts")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return options{}, fmt.Errorf("missing recipients PDF path")
	}
	opts.pdfPath = fs.Arg(0)

	m, err := extract.ParseMethod(method)
	if err != nil {
		return options{}, err
	}
	opts.method = m

	if defaultBank != "" {
		if opts.detectBank {
			return options{}, fmt.Errorf("-d/--detect-bank and -b/--default-bank are mutually exclusive")
		}
		bank, err := recipients.BankByName(defaultBank)
		if err != nil {
			return options{}, err
		}
		opts.defaultBank = bank
	}
	return opts, nil
}

func run(opts options) error {
	level := observability.LevelInfo
	if opts.verbose {
		level = observability.LevelDebug
	}
	log := observability.NewTextLogger(os.Stderr, level)

	pages, err := extract.Validate(opts.pdfPath)
	if err != nil {
		return err
	}
	log.Info("processing", observability.String("file", opts.pdfPath), observability.Int("pages", pages))

	ext := extract.Extractor{
		Logger:     log,
		OCROptions: []ocr.InputOption{ocr.WithLanguages(opts.lang)},
	}

	var recs []recipients.Recipient
	var stats recipients.Stats
	accept := func(lines []string) bool {
		recs, stats = recipients.Parse(lines)
		return len(recs) > 0
	}
	_, backend, err := ext.Extract(context.Background(), opts.pdfPath, opts.method, accept)
	if err != nil {
		if errors.Is(err, extract.ErrNoRecipients) {
			return fmt.Errorf("%w; try a different extraction method with --method", err)
		}
		return err
	}
	log.Info("extracted recipients",
		observability.String("backend", backend),
		observability.Int("count", len(recs)))
	log.Debug("parse stats",
		observability.Int("lines", stats.Lines),
		observability.Int("skipped", stats.Skipped))

	before := len(recs)
	recs = recipients.Dedupe(recs)
	if removed := before - len(recs); removed > 0 {
		log.Info("removed duplicate entries", observability.Int("count", removed))
	}

	recipients.ApplyBank(recs, opts.detectBank, opts.defaultBank)

	for _, r := range recs {
		log.Debug("beneficiary",
			observability.String("name", r.Name),
			observability.String("account", r.Account),
			observability.String("reference", r.Reference),
			observability.String("bank", r.Bank))
	}

	if err := investec.WriteFile(opts.output, investec.FromRecipients(recs)); err != nil {
		return err
	}
	log.Info("wrote beneficiaries",
		observability.Int("count", len(recs)),
		observability.String("file", opts.output))
	return nil
}
