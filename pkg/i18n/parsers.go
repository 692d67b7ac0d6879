package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// JSONParser reads catalogs written as JSON objects keyed by language.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse decodes content into per-language catalogs. See catalogsFromDocument
// for how top-level keys are treated.
func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}
	return catalogsFromDocument(doc)
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "json")
}

// YAMLParser reads catalogs written as YAML mappings keyed by language.
type YAMLParser struct{}

func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes content into per-language catalogs. See catalogsFromDocument
// for how top-level keys are treated.
func (p *YAMLParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrYAMLParsingCancelled, err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	return catalogsFromDocument(doc)
}

func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "yaml", "yml")
}

// catalogsFromDocument keeps the top-level keys that are BCP 47 language
// tags, so a catalog file may carry metadata such as a version next to the
// languages. A language whose value is not a mapping, or a document without
// any language, is an ErrInvalidCatalog.
func catalogsFromDocument(doc map[string]any) (map[string]map[string]any, error) {
	catalogs := make(map[string]map[string]any, len(doc))
	for key, val := range doc {
		if _, err := language.Parse(key); err != nil {
			continue
		}
		messages, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected a mapping, got %T", ErrInvalidCatalog, key, val)
		}
		catalogs[key] = messages
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("%w: no language found", ErrInvalidCatalog)
	}
	return catalogs, nil
}

func hasExtension(ext string, want ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, w := range want {
		if strings.EqualFold(ext, w) {
			return true
		}
	}
	return false
}
