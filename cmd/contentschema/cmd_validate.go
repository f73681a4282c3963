package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	cs "github.com/wcc-platform/contentschema"
	"github.com/wcc-platform/contentschema/draft7"
	"github.com/wcc-platform/contentschema/schemas"
)

type validateOptions struct {
	schema           string
	engine           string
	format           string
	failFast         bool
	rejectDuplicates bool
	maxBytes         int64
}

func newValidateCmd() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [file...]",
		Short: "Validate JSON or YAML documents against a published schema",
		Long: `Validates each file against the selected schema and prints one line per issue.
Use "-" to read a document from standard input. The command fails when any
document does not conform.

Engines:
  - native: the built-in validator
  - draft7: a general-purpose draft-07 validator run over the published document`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.schema, "schema", schemas.CodeOfConductName, "schema name")
	f.StringVar(&opts.engine, "engine", "native", "validation engine: native or draft7")
	f.StringVar(&opts.format, "format", "", "input format: json or yaml (default from file extension)")
	f.BoolVar(&opts.failFast, "fail-fast", false, "stop at the first issue of each document")
	f.BoolVar(&opts.rejectDuplicates, "reject-duplicates", true, "report duplicate object keys")
	f.Int64Var(&opts.maxBytes, "max-bytes", 0, "reject documents larger than this many bytes (0 = unlimited)")
	return cmd
}

func selectSchema(name, engine string) (cs.Schema, error) {
	switch engine {
	case "native":
		return schemas.Lookup(name)
	case "draft7":
		doc, err := schemas.Document(name)
		if err != nil {
			return nil, err
		}
		return draft7.Compile(doc)
	default:
		return nil, fmt.Errorf("unknown engine %q (want native or draft7)", engine)
	}
}

func runValidate(ctx context.Context, stdin io.Reader, out io.Writer, opts validateOptions, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	schema, err := selectSchema(opts.schema, opts.engine)
	if err != nil {
		return err
	}
	decode := cs.DecodeOpt{FailFast: opts.failFast, MaxBytes: opts.maxBytes}
	if opts.rejectDuplicates {
		decode.Strictness.OnDuplicateKey = cs.Error
	}

	failed := 0
	for _, name := range files {
		data, err := readInput(stdin, name)
		if err != nil {
			return err
		}
		format := opts.format
		if format == "" {
			format = formatFromName(name)
		}
		_, err = cs.ValidateReader(ctx, schema, format, bytes.NewReader(data), decode)
		if err == nil {
			fmt.Fprintf(out, "%s: ok\n", name)
			continue
		}
		failed++
		for _, it := range cs.IssuesFromErr("/", err) {
			fmt.Fprintf(out, "%s: %s at %s: %s\n", name, it.Code, it.Path, it.Message)
		}
		logger.Debug("document rejected", zap.String("file", name), zap.String("schema", opts.schema), zap.Error(err))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(files))
	}
	return nil
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return b, nil
}

func formatFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}
