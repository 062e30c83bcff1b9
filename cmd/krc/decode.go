package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/krc"
	"github.com/simonhull/krc/internal/convert"
)

type printOptions struct {
	json         bool
	pure         bool
	translations bool
}

func (a *app) decodeCmd() *cobra.Command {
	var (
		po      printOptions
		strict  bool
		conv    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "decode <file.krc>...",
		Short: "Decode KRC files and print their lyrics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("convert") {
				a.cfg.Convert = conv
			}
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return fmt.Errorf("--workers must be positive, got %d", workers)
				}
				a.cfg.Workers = workers
			}

			opts, err := a.decodeOptions()
			if err != nil {
				return err
			}
			if strict {
				opts = append(opts, krc.WithStrictParsing())
			}
			cc, err := a.converter()
			if err != nil {
				return err
			}

			docs, err := krc.OpenMany(cmd.Context(), args, opts...)
			if err != nil {
				return err
			}
			if cc != nil {
				for i, doc := range docs {
					docs[i] = convert.Document(cc, doc)
				}
			}

			for i, doc := range docs {
				for _, w := range doc.Warnings {
					a.logger.Warn(w.Stage+" skipped",
						slog.String("path", args[i]),
						slog.String("stage", w.Stage),
						slog.Int("line", w.Line),
						slog.String("reason", w.Message))
				}
			}

			if po.json {
				return writeJSON(a.out, args, docs)
			}
			for i, doc := range docs {
				if len(docs) > 1 {
					if i > 0 {
						fmt.Fprintln(a.out)
					}
					fmt.Fprintf(a.out, "==> %s <==\n", args[i])
				}
				printDocument(a.out, doc, po)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&po.json, "json", "j", false, "Output JSON")
	cmd.Flags().BoolVarP(&po.pure, "pure", "p", false, "Output lyrics without times or tags")
	cmd.Flags().BoolVarP(&po.translations, "translations", "t", false, "Also print translation tracks")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on any skipped line")
	cmd.Flags().StringVar(&conv, "convert", "",
		"OpenCC conversion for display, one of "+strings.Join(convert.Configs, ", ")+" (default from KRC_CONVERT)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Files decoded in parallel (default from KRC_WORKERS or CPU count)")

	return cmd
}

type jsonDocument struct {
	Path string `json:"path"`
	*krc.Document
}

func writeJSON(w io.Writer, paths []string, docs []*krc.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if len(docs) == 1 {
		return enc.Encode(jsonDocument{Path: paths[0], Document: docs[0]})
	}
	out := make([]jsonDocument, len(docs))
	for i := range docs {
		out[i] = jsonDocument{Path: paths[i], Document: docs[i]}
	}
	return enc.Encode(out)
}
