// Package validator checks stored templates before they are served.
package validator

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/BigRLab/thedom/pkg/factory"
	"github.com/BigRLab/thedom/pkg/ports"
	"github.com/BigRLab/thedom/pkg/schema"
)

// ValidateTemplates loads every template of loader and reports unknown
// products, unknown properties and duplicate accessors.
func ValidateTemplates(ctx context.Context, loader ports.TemplateLoader, b factory.Builder) error {
	ids, err := loader.ListTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}
	sort.Strings(ids)

	var errors []string
	for _, id := range ids {
		tpl, err := loader.GetTemplate(ctx, id)
		if err != nil {
			errors = append(errors, fmt.Sprintf("Load error in '%s': %v", id, err))
			continue
		}
		for _, problem := range ValidateTemplate(tpl, b) {
			errors = append(errors, fmt.Sprintf("%s: %s", id, problem))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("found %d errors:\n- %s", len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}

// ValidateTemplate returns the problems found in tpl and its children. Each
// problem names the element path, such as /0/2.
func ValidateTemplate(tpl factory.Template, b factory.Builder) []string {
	var problems []string
	accessors := make(map[string]string)

	// Breadth-first so problems are listed top down.
	type item struct {
		path string
		tpl  factory.Template
	}
	queue := []item{{"/", tpl}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		props, err := factory.Properties(b, current.tpl.Create)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: %v", current.path, err))
		} else {
			names := make([]string, 0)
			for name := range current.tpl.AllProperties() {
				if _, ok := props.Get(name); !ok {
					names = append(names, name)
				}
			}
			sort.Strings(names)
			for _, name := range names {
				problems = append(problems, fmt.Sprintf("%s: unknown property %q for %s", current.path, name, current.tpl.Create))
			}
			if _, err := schema.Coerce(props.Schema(), current.tpl.AllProperties()); err != nil {
				for _, verr := range schema.ValidationErrors(err) {
					problems = append(problems, fmt.Sprintf("%s: %v", current.path, verr))
				}
			}
		}

		if a := current.tpl.Accessor; a != "" {
			if prev, ok := accessors[a]; ok {
				problems = append(problems, fmt.Sprintf("%s: accessor %q already used at %s", current.path, a, prev))
			} else {
				accessors[a] = current.path
			}
		}

		for i, child := range current.tpl.ChildElements {
			path := fmt.Sprintf("%s%d", current.path, i)
			if current.path != "/" {
				path = fmt.Sprintf("%s/%d", current.path, i)
			}
			queue = append(queue, item{path, child})
		}
	}
	return problems
}
