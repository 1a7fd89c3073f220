package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/damacus/iron-files/internal/filemeta"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	noColor bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "filemeta",
		Short:        "Classify, format and sanitize file names and sizes",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	cmd.AddCommand(
		newDescribeCmd(opts),
		newSizeCmd(),
		newSanitizeCmd(),
		newCategoriesCmd(opts),
	)
	return cmd
}

func newDescribeCmd(root *rootOptions) *cobra.Command {
	var size int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "describe NAME...",
		Short: "Show extension, category, icon style and sanitized name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				for _, name := range args {
					if err := enc.Encode(filemeta.Describe(name, size)); err != nil {
						return errors.Wrap(err, "encode metadata")
					}
				}
				return nil
			}

			st := newStyles(out, root.noColor)
			for _, name := range args {
				writeDescription(out, st, filemeta.Describe(name, size))
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&size, "size", 0, "file size in bytes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per name")
	return cmd
}

func writeDescription(w io.Writer, st *styles, m filemeta.Metadata) {
	ext := m.Extension
	if ext == "" {
		ext = "-"
	}
	fmt.Fprintf(w, "%s %s\n", st.category(m.Category), m.Name)
	fmt.Fprintf(w, "  extension: %s\n", ext)
	fmt.Fprintf(w, "  size:      %s\n", m.FormattedSize)
	fmt.Fprintf(w, "  type:      %s\n", m.ContentType)
	fmt.Fprintf(w, "  safe name: %s\n", m.SafeName)
}

func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "size [--] BYTES...",
		Short:   "Format byte counts for humans",
		Example: "  filemeta size 1536 1048576\n  filemeta size -- -5",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				n, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
				if err != nil {
					return errors.Wrapf(err, "invalid byte count %q", arg)
				}
				fmt.Fprintln(cmd.OutOrStdout(), filemeta.FormatSize(n))
			}
			return nil
		},
	}
}

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize NAME...",
		Short: "Replace characters outside [A-Za-z0-9._-] with underscores",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range args {
				fmt.Fprintln(cmd.OutOrStdout(), filemeta.Sanitize(name))
			}
			return nil
		},
	}
}

func newCategoriesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories and the extensions that map to them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st := newStyles(out, root.noColor)
			for _, c := range filemeta.Categories() {
				exts := filemeta.ExtensionsFor(c)
				list := "(anything else)"
				if len(exts) > 0 {
					list = strings.Join(exts, ", ")
				}
				fmt.Fprintf(out, "%s %-14s %s\n", st.category(c), filemeta.IconStyleFor(c), list)
			}
			return nil
		},
	}
}
