package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ubl2cii/internal/cii"
	"ubl2cii/internal/codec"
	"ubl2cii/internal/config"
	"ubl2cii/internal/convert"
	"ubl2cii/internal/diagnostic"
)

var errStrictWarnings = errors.New("conversion produced warnings in strict mode")

var (
	flagInput  string
	flagOutput string
	flagConfig string
	flagDebug  bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a UBL document to CII",
	Long: "Convert reads a UBL 2.1 invoice or credit note, detects the " +
		"document kind from the root element and writes the converted CII " +
		"D16B document to the output file, or to stdout when no output is given.",
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&flagInput, "input", "i", "", "input UBL document (required)")
	convertCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default stdout)")
	convertCmd.Flags().StringVar(&flagConfig, "config", "", "run configuration YAML file")
	convertCmd.Flags().BoolVar(&flagDebug, "debug", false, "dump the converted document tree to stderr")
	_ = convertCmd.MarkFlagRequired("input")
}

func runConvert(_ *cobra.Command, _ []string) error {
	cfg := config.Default()
	if flagConfig != "" {
		loaded, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	log := logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("input", flagInput),
	)

	data, err := os.ReadFile(flagInput)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	kind, err := codec.DetectKind(data)
	if err != nil {
		return err
	}
	log.Info("detected document kind", zap.Stringer("kind", kind))

	sink := &diagnostic.Sink{}
	doc, err := convertDocument(kind, data, sink)
	if err != nil {
		return err
	}

	reportFindings(log, sink)

	if flagDebug {
		spew.Fdump(os.Stderr, doc)
	}

	if err := sink.Err(); err != nil {
		return err
	}
	if cfg.Strict && len(sink.Warnings) > 0 {
		return fmt.Errorf("%w: %d warnings", errStrictWarnings, len(sink.Warnings))
	}

	var buf bytes.Buffer
	if err := codec.EncodeCII(&buf, doc, cfg.Output.Indent); err != nil {
		return err
	}

	if flagOutput == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(flagOutput, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info("wrote output", zap.String("output", flagOutput), zap.Int("bytes", buf.Len()))

	return nil
}

// convertDocument dispatches on the detected document kind.
func convertDocument(kind codec.Kind, data []byte, sink *diagnostic.Sink) (*cii.CrossIndustryInvoice, error) {
	switch kind {
	case codec.KindInvoice:
		src, err := codec.DecodeInvoice(data)
		if err != nil {
			return nil, err
		}
		return convert.Invoice(src, sink)
	case codec.KindCreditNote:
		src, err := codec.DecodeCreditNote(data)
		if err != nil {
			return nil, err
		}
		return convert.CreditNote(src, sink)
	default:
		return nil, codec.ErrUnknownDocument
	}
}

// reportFindings logs every diagnostic record at its severity.
func reportFindings(log *zap.Logger, sink *diagnostic.Sink) {
	for _, rec := range sink.Errors {
		log.Error(rec.Message, zap.String("code", rec.Code), zap.String("term", rec.Term), zap.String("path", rec.Path))
	}
	for _, rec := range sink.Warnings {
		log.Warn(rec.Message, zap.String("code", rec.Code), zap.String("term", rec.Term), zap.String("path", rec.Path))
	}
	for _, rec := range sink.Infos {
		log.Info(rec.Message, zap.String("code", rec.Code), zap.String("term", rec.Term), zap.String("path", rec.Path))
	}
}
