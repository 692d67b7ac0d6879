package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Format is a report output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func parseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatYAML:
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q, valid formats are: %s, %s", ErrUnknownFormat, s, FormatYAML, FormatJSON)
	}
}

// Outcome is the validation result of one record.
type Outcome struct {
	Index      int           `json:"index" yaml:"index"`
	Name       string        `json:"name,omitempty" yaml:"name,omitempty"`
	Valid      bool          `json:"valid" yaml:"valid"`
	Violations violationList `json:"violations,omitempty" yaml:"violations,omitempty"`
}

func newOutcome(index int, name string, err error) Outcome {
	vs := validator.ExtractViolations(err)
	return Outcome{
		Index:      index,
		Name:       name,
		Valid:      vs.IsEmpty(),
		Violations: violationList(vs),
	}
}

// Report is what check and demo print.
type Report struct {
	Kind     string    `json:"kind,omitempty" yaml:"kind,omitempty"`
	Lang     string    `json:"lang" yaml:"lang"`
	Valid    int       `json:"valid" yaml:"valid"`
	Invalid  int       `json:"invalid" yaml:"invalid"`
	Outcomes []Outcome `json:"records" yaml:"records"`
}

// newReport localizes the violations of outcomes into the language of ctx
// and counts them.
func newReport(ctx context.Context, kind string, tr *i18n.Translator, outcomes []Outcome) Report {
	r := Report{Kind: kind, Lang: tr.ContextLanguage(ctx), Outcomes: outcomes}
	for i := range r.Outcomes {
		o := &r.Outcomes[i]
		if o.Valid {
			r.Valid++
			continue
		}
		r.Invalid++
		o.Violations = violationList(i18n.LocalizeContext(ctx, tr, validator.Violations(o.Violations)))
	}
	return r
}

func (r Report) write(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}
}

// violationList prints as a mapping from field to its violations, in the
// order the fields first failed.
type violationList validator.Violations

func (l violationList) MarshalJSON() ([]byte, error) {
	return validator.Violations(l).MarshalJSON()
}

func (l violationList) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	vs := validator.Violations(l)
	for _, field := range vs.Fields() {
		items := &yaml.Node{Kind: yaml.SequenceNode}
		for _, v := range vs.GetErrors(field) {
			item := &yaml.Node{Kind: yaml.MappingNode}
			addScalar(item, "code", v.Code)
			addScalar(item, "message", v.Message)
			if v.Path != v.Field {
				addScalar(item, "path", v.Path)
			}
			if v.Index >= 0 {
				item.Content = append(item.Content, scalar("index"), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v.Index)})
			}
			if len(v.Params) > 0 {
				params := &yaml.Node{}
				if err := params.Encode(v.Params); err != nil {
					return nil, err
				}
				item.Content = append(item.Content, scalar("params"), params)
			}
			items.Content = append(items.Content, item)
		}
		root.Content = append(root.Content, scalar(field), items)
	}
	return root, nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func addScalar(n *yaml.Node, key, value string) {
	n.Content = append(n.Content, scalar(key), scalar(value))
}
