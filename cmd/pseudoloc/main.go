/*
Command pseudoloc pseudolocalizes text and go-i18n message catalogs.

Usage:

   pseudoloc run [--methods fakebidi] [--parse] [text ...]
   pseudoloc catalog active.en.toml [--methods psaccent] [--locale en-XA] [--out file]
   pseudoloc methods

Without text arguments, run reads lines from standard input.
Settings may be provided by environment variables PSEUDOLOC_METHODS,
PSEUDOLOC_LOCALE and PSEUDOLOC_TRACE, optionally from a .env file.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/pseudoloc/message"
	"github.com/npillmayer/pseudoloc/pipeline"
	"github.com/npillmayer/pseudoloc/width"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	infoColor  = color.New(color.FgCyan)
)

func main() {
	if err := newRootCmd(loadConfig()).Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "pseudoloc: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(conf *Config) *cobra.Command {
	var trace string
	root := &cobra.Command{
		Use:           "pseudoloc",
		Short:         "Pseudolocalize messages to find i18n bugs early",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if trace != "" {
				conf.TraceLevel = traceLevel(trace)
			}
			gtrace.CoreTracer = gologadapter.New()
			gtrace.CoreTracer.SetTraceLevel(conf.TraceLevel)
		},
	}
	root.PersistentFlags().StringVarP(&conf.Methods, "methods", "m", conf.Methods,
		"Pseudolocalization methods, comma-separated (see 'pseudoloc methods')")
	root.PersistentFlags().BoolVar(&conf.EastAsian, "east-asian", false,
		"Measure text widths in an East Asian context")
	root.PersistentFlags().StringVar(&trace, "trace", "", "Trace level (error, info, debug)")
	root.AddCommand(newRunCmd(conf), newCatalogCmd(conf), newMethodsCmd())
	return root
}

// buildPipeline creates the pipeline for conf. Text widths are measured in the
// context of locale, or in the user's context if locale is empty.
func buildPipeline(conf *Config, locale string) (*pipeline.Pipeline, error) {
	var ctx *width.Context
	switch {
	case conf.EastAsian:
		ctx = width.EastAsianContext
	case locale != "":
		ctx = width.ContextForLocale(locale)
	default:
		ctx = width.ContextFromEnvironment()
	}
	return pipeline.Build(conf.Methods, pipeline.WithWidthContext(ctx))
}

// --- run -----------------------------------------------------------------

func newRunCmd(conf *Config) *cobra.Command {
	var parse bool
	cmd := &cobra.Command{
		Use:   "run [text ...]",
		Short: "Pseudolocalize text given as arguments or on standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline(conf, "")
			if err != nil {
				return err
			}
			if len(args) > 0 {
				return runTexts(p, args, parse, cmd.OutOrStdout())
			}
			return runLines(p, cmd.InOrStdin(), parse, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVarP(&parse, "parse", "p", false,
		"Keep markup and placeholders unchanged")
	return cmd
}

func runOne(p *pipeline.Pipeline, text string, parse bool) (string, error) {
	if parse {
		return p.RunMessage(message.Parse(text))
	}
	return p.Run(text)
}

func runTexts(p *pipeline.Pipeline, texts []string, parse bool, w io.Writer) error {
	for _, text := range texts {
		out, err := runOne(p, text, parse)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}
	return nil
}

func runLines(p *pipeline.Pipeline, r io.Reader, parse bool, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out, err := runOne(p, scanner.Text(), parse)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	}
	return scanner.Err()
}

// --- catalog -------------------------------------------------------------

func newCatalogCmd(conf *Config) *cobra.Command {
	var outFile string
	var toFile bool
	cmd := &cobra.Command{
		Use:   "catalog [message-file]",
		Short: "Pseudolocalize a go-i18n message file (TOML or JSON)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPipeline(conf, conf.Locale)
			if err != nil {
				return err
			}
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			cat, err := readCatalog(buf, args[0])
			if err != nil {
				return err
			}
			pcat, err := pseudolocalize(cat, p, conf.Locale)
			if err != nil {
				return err
			}
			data, err := pcat.encode()
			if err != nil {
				return err
			}
			if toFile && outFile == "" {
				outFile = outputName(args[0], conf.Locale)
			}
			if outFile == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err = os.WriteFile(outFile, data, 0644); err != nil {
				return err
			}
			infoColor.Fprintf(cmd.ErrOrStderr(), "wrote %d messages to %s\n", len(pcat.Messages), outFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Output file (default: standard output)")
	cmd.Flags().BoolVarP(&toFile, "write", "w", false,
		"Write to a file named after the target locale, e.g. active.en-XA.toml")
	cmd.Flags().StringVarP(&conf.Locale, "locale", "l", conf.Locale, "Target pseudo-locale")
	return cmd
}

// --- methods -------------------------------------------------------------

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List available pseudolocalization methods",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range pipeline.Names() {
				if pipeline.IsAlias(name) {
					p := pipeline.MustBuild(name)
					fmt.Fprintf(cmd.OutOrStdout(), "%-10s = %s\n", name, strings.Join(p.Methods(), ","))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			}
		},
	}
}
