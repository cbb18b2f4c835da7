package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/npillmayer/pseudoloc/message"
	"github.com/npillmayer/pseudoloc/pipeline"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

var unmarshalFuncs = map[string]i18n.UnmarshalFunc{
	"toml": toml.Unmarshal,
	"json": json.Unmarshal,
}

// Catalog is a pseudolocalized message catalog.
type Catalog struct {
	Format   string // "toml" or "json"
	Tag      language.Tag
	Messages []*i18n.Message
}

// readCatalog parses a go-i18n message file. The file format is derived from
// the extension of path.
func readCatalog(buf []byte, path string) (*Catalog, error) {
	mf, err := i18n.ParseMessageFileBytes(buf, path, unmarshalFuncs)
	if err != nil {
		return nil, fmt.Errorf("cannot parse catalog %s: %w", path, err)
	}
	gtrace.CoreTracer.Infof("read %d messages from %s", len(mf.Messages), path)
	return &Catalog{Format: mf.Format, Tag: mf.Tag, Messages: mf.Messages}, nil
}

// pseudolocalize runs every plural form of every message through a pipeline.
// Placeholders, template actions and markup are kept intact. Template actions
// are recognized by the delimiters of their message.
func pseudolocalize(cat *Catalog, p *pipeline.Pipeline, locale string) (*Catalog, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid target locale %q: %w", locale, err)
	}
	out := &Catalog{Format: cat.Format, Tag: tag}
	for _, msg := range cat.Messages {
		pm := *msg
		for _, form := range []*string{&pm.Zero, &pm.One, &pm.Two, &pm.Few, &pm.Many, &pm.Other} {
			if *form == "" {
				continue
			}
			if *form, err = p.RunMessage(message.ParseWithDelims(*form, msg.LeftDelim, msg.RightDelim)); err != nil {
				return nil, fmt.Errorf("message %q: %w", msg.ID, err)
			}
		}
		pm.Hash = ""
		out.Messages = append(out.Messages, &pm)
	}
	return out, nil
}

// encode serializes a catalog in go-i18n message file layout.
func (cat *Catalog) encode() ([]byte, error) {
	doc := make(map[string]interface{}, len(cat.Messages))
	for _, msg := range cat.Messages {
		doc[msg.ID] = messageEntry(msg)
	}
	switch cat.Format {
	case "toml":
		return toml.Marshal(doc)
	case "json":
		b, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
	return nil, fmt.Errorf("unsupported catalog format %q", cat.Format)
}

// messageEntry is a plain string for messages consisting of an 'other' form
// only, and a table of fields otherwise.
func messageEntry(msg *i18n.Message) interface{} {
	fields := map[string]string{
		"description": msg.Description,
		"zero":        msg.Zero,
		"one":         msg.One,
		"two":         msg.Two,
		"few":         msg.Few,
		"many":        msg.Many,
		"other":       msg.Other,
		"leftDelim":   msg.LeftDelim,
		"rightDelim":  msg.RightDelim,
	}
	for k, v := range fields {
		if v == "" {
			delete(fields, k)
		}
	}
	if len(fields) == 1 && fields["other"] != "" {
		return msg.Other
	}
	return fields
}

// outputName derives a catalog file name for a target locale, e.g.
// active.en.toml -> active.en-XA.toml.
func outputName(path string, locale string) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if i := strings.LastIndexByte(stem, '.'); i >= 0 {
		if _, err := language.Parse(stem[i+1:]); err == nil {
			stem = stem[:i]
		}
	}
	return filepath.Join(dir, stem+"."+locale+ext)
}
