// Liquid template rendering for narrative entries, with a parse cache.
package narrative

import (
	"fmt"
	"sync"

	"github.com/osteele/liquid"
)

// Entry is one rendered analysis block.
type Entry struct {
	ID             string         `json:"id"`
	Issue          string         `json:"issue"`
	Description    string         `json:"description"`
	Reasoning      string         `json:"reasoning"`
	Recommendation string         `json:"recommendation"`
	Data           map[string]any `json:"data,omitempty"`
}

// entryTemplate holds the Liquid source for each field of an entry.
type entryTemplate struct {
	Issue          string
	Description    string
	Reasoning      string
	Recommendation string
}

// Renderer renders entry templates. It is safe for concurrent use.
type Renderer struct {
	engine *liquid.Engine
	cache  sync.Map // "locale/id/field" → *liquid.Template
}

// NewRenderer creates a renderer with the narrative filters registered.
func NewRenderer() *Renderer {
	engine := liquid.NewEngine()

	// {{ level | level_label: locale }}
	engine.RegisterFilter("level_label", func(level string, locale string) string {
		return complexityLabel(Locale(locale), ComplexityLevel(level))
	})

	return &Renderer{engine: engine}
}

// Render fills the template for id in locale with data.
func (r *Renderer) Render(locale Locale, id string, data map[string]any) (Entry, error) {
	tmpl, ok := lookupTemplate(locale, id)
	if !ok {
		return Entry{}, fmt.Errorf("no template %q for locale %s", id, locale)
	}

	bindings := make(map[string]any, len(data)+1)
	for k, v := range data {
		bindings[k] = v
	}
	bindings["locale"] = string(locale)

	entry := Entry{ID: id, Data: data}
	render := func(field, src string) (string, error) {
		out, err := r.renderField(string(locale)+"/"+id+"/"+field, src, bindings)
		if err != nil {
			return "", fmt.Errorf("render %s.%s: %w", id, field, err)
		}
		return out, nil
	}

	var err error
	if entry.Issue, err = render("issue", tmpl.Issue); err != nil {
		return Entry{}, err
	}
	if entry.Description, err = render("description", tmpl.Description); err != nil {
		return Entry{}, err
	}
	if entry.Reasoning, err = render("reasoning", tmpl.Reasoning); err != nil {
		return Entry{}, err
	}
	if entry.Recommendation, err = render("recommendation", tmpl.Recommendation); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (r *Renderer) renderField(key, src string, bindings map[string]any) (string, error) {
	var tpl *liquid.Template
	if cached, ok := r.cache.Load(key); ok {
		tpl = cached.(*liquid.Template)
	} else {
		parsed, err := r.engine.ParseString(src)
		if err != nil {
			return "", fmt.Errorf("parse: %w", err)
		}
		r.cache.Store(key, parsed)
		tpl = parsed
	}

	out, err := tpl.RenderString(bindings)
	if err != nil {
		return "", err
	}
	return out, nil
}

func lookupTemplate(locale Locale, id string) (entryTemplate, bool) {
	set, ok := entryTemplates[locale]
	if !ok {
		set = entryTemplates[English]
	}
	t, ok := set[id]
	return t, ok
}
