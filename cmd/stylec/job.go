package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/npillmayer/respstyle/attr"
	"github.com/npillmayer/respstyle/breakpoint"
	"github.com/npillmayer/respstyle/compiler"
	"github.com/npillmayer/respstyle/shorthand"
	"gopkg.in/yaml.v3"
)

// Job is a compilation job as read from YAML:
//
//	attr:
//	  desktop: { value: { color: red, margin: 1px 2px } }
//	  phone:   { hover: { color: blue } }
//	selectors:
//	  desktop: { value: .et_pb_text_0 }
//	propertySelectors:
//	  desktop: { value: { margin: .et_pb_text_0 .inner } }
//	important: { desktop: { value: { margin: true } } }
//	orderClass: .et_pb_text_0
//
// Instead of rendering map values as properties, a job may give a template,
// which is executed with the declaration parameters.
type Job struct {
	Attr              attr.Tree[any]               `yaml:"attr"`
	Defaults          attr.Tree[any]               `yaml:"defaults,omitempty"`
	Selectors         attr.Tree[string]            `yaml:"selectors"`
	PropertySelectors attr.Tree[map[string]string] `yaml:"propertySelectors,omitempty"`
	Important         yaml.Node                    `yaml:"important,omitempty"`
	OrderClass        string                       `yaml:"orderClass,omitempty"`
	InsideSticky      bool                         `yaml:"insideSticky,omitempty"`
	AtRules           string                       `yaml:"atRules,omitempty"`
	Template          string                       `yaml:"template,omitempty"`
	// Split expands shorthand values into longhands, e.g. "margin: 1px 2px"
	// into four margin properties.
	Split  bool           `yaml:"split,omitempty"`
	Extras map[string]any `yaml:"extras,omitempty"`
}

// loadJob decodes a job. Unknown keys are rejected.
func loadJob(r io.Reader) (*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	job := &Job{}
	if err := dec.Decode(job); err != nil {
		if errors.Is(err, io.EOF) {
			return job, nil
		}
		return nil, fmt.Errorf("decoding job: %w", err)
	}
	job.normalize()
	return job, nil
}

// normalize converts decoded mappings below the tree leaves to
// map[string]any; yaml.v3 decodes them into the type of the enclosing map.
func (job *Job) normalize() {
	job.Attr = attr.NormalizeTree(job.Attr)
	job.Defaults = attr.NormalizeTree(job.Defaults)
	if job.Extras != nil {
		job.Extras = attr.Normalize(job.Extras).(map[string]any)
	}
}

func (job *Job) important() (shorthand.Important, error) {
	switch job.Important.Kind {
	case 0:
		return shorthand.Important{}, nil
	case yaml.ScalarNode:
		var all bool
		if err := job.Important.Decode(&all); err != nil {
			return shorthand.Important{}, fmt.Errorf("decoding important flag: %w", err)
		}
		return shorthand.All(all), nil
	}
	var tree attr.Tree[map[string]bool]
	if err := job.Important.Decode(&tree); err != nil {
		return shorthand.Important{}, fmt.Errorf("decoding important tree: %w", err)
	}
	return shorthand.PerProperty(tree), nil
}

// args translates the job into compiler arguments.
func (job *Job) args(settings *breakpoint.Settings) (compiler.Args, error) {
	imp, err := job.important()
	if err != nil {
		return compiler.Args{}, err
	}
	decl, err := job.declaration()
	if err != nil {
		return compiler.Args{}, err
	}
	return compiler.Args{
		Attr:               job.Attr,
		Defaults:           job.Defaults,
		Selectors:          job.Selectors,
		PropertySelectors:  job.PropertySelectors,
		Shorthands:         shorthand.Default(),
		Important:          imp,
		Declaration:        decl,
		AtRules:            job.AtRules,
		OrderClass:         job.OrderClass,
		InsideStickyModule: job.InsideSticky,
		Breakpoints:        settings,
		Extras:             job.Extras,
	}, nil
}

// declaration creates the declaration function of the job.
func (job *Job) declaration() (compiler.DeclarationFunc, error) {
	if job.Template == "" {
		return job.properties, nil
	}
	tmpl, err := template.New("declaration").Funcs(sprig.FuncMap()).Parse(job.Template)
	if err != nil {
		return nil, fmt.Errorf("unable to parse declaration template: %w", err)
	}
	return func(p compiler.DeclarationParams) compiler.Declaration {
		var sb strings.Builder
		if err := tmpl.Execute(&sb, p); err != nil {
			tracer().Errorf("%s.%s: %v", p.Breakpoint, p.State, err)
			return nil
		}
		return compiler.Text(sb.String())
	}, nil
}

// properties renders a map value as properties, sorted by name.
func (job *Job) properties(p compiler.DeclarationParams) compiler.Declaration {
	m, ok := attr.StringMap(p.Value)
	if !ok {
		if p.Value != nil {
			tracer().Infof("%s.%s: scalar value without template skipped", p.Breakpoint, p.State)
		}
		return nil
	}
	var props compiler.Properties
	for name, v := range m {
		value := fmt.Sprint(v)
		if job.Split && shorthand.CanSplit(name) {
			kvs, err := shorthand.Split(name, value)
			if err == nil {
				for _, kv := range kvs {
					props = append(props, compiler.Property{Name: kv.Key, Value: kv.Value})
				}
				continue
			}
			tracer().Infof("%s: %v", name, err)
		}
		props = append(props, compiler.Property{Name: name, Value: value})
	}
	sort.SliceStable(props, func(i, j int) bool { return props[i].Name < props[j].Name })
	return props.Flag(p.Important)
}
