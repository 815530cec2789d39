package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrSchema is returned for schemas which parse, but describe an inconsistent set
// of properties.
var ErrSchema = errors.New("propgen: invalid schema")

// Schema is the root of a property schema file.
type Schema struct {
	Properties []PropertySpec `yaml:"properties" validate:"required,min=1,dive"`
}

// PropertySpec describes one CSS property and the shapes its value may take.
type PropertySpec struct {
	Name     string   `yaml:"name" validate:"required,kebab"`
	Domain   string   `yaml:"domain" validate:"omitempty,kebab"`
	Keywords []string `yaml:"keywords" validate:"omitempty,unique,dive,required,keyword"`
	Unit     bool     `yaml:"unit"`
	Zero     bool     `yaml:"zero"`
	Number   bool     `yaml:"number"`
	Text     bool     `yaml:"text"`
	Color    bool     `yaml:"color"`
	Manual   bool     `yaml:"manual"`
}

// DomainName is the name of the keyword domain of p; it defaults to the property name.
func (p PropertySpec) DomainName() string {
	if p.Domain != "" {
		return p.Domain
	}
	return p.Name
}

func (p PropertySpec) hasValueShape() bool {
	return len(p.Keywords) > 0 || p.Unit || p.Zero || p.Number || p.Text || p.Color || p.Manual
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	kebabPattern   = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	keywordPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9]*(-[a-zA-Z0-9]+)*$`)
	cssWide        = []string{"initial", "inherit", "unset"}
)

// validatorInstance configures and returns the shared schema validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("kebab", func(fl validator.FieldLevel) bool {
			return kebabPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("keyword", func(fl validator.FieldLevel) bool {
			return keywordPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// LoadSchema reads a schema file from disk, validates it, and returns it.
func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("propgen: %w", err)
	}
	return ParseSchema(data)
}

// ParseSchema parses and validates a schema.
func ParseSchema(data []byte) (*Schema, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("propgen: cannot parse schema: %w", err)
	}
	if err := ValidateSchema(&schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// ValidateSchema checks field constraints and the consistency of the property set.
func ValidateSchema(schema *Schema) error {
	if err := validatorInstance().Struct(schema); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}
	names := make(map[string]bool)
	domains := make(map[string][]string)
	for _, p := range schema.Properties {
		if names[p.Name] {
			return fmt.Errorf("%w: duplicate property %q", ErrSchema, p.Name)
		}
		names[p.Name] = true
		if !p.hasValueShape() {
			return fmt.Errorf("%w: property %q has no value shape", ErrSchema, p.Name)
		}
		if p.Manual && (len(p.Keywords) > 0 || p.Unit || p.Zero || p.Number || p.Text || p.Color) {
			return fmt.Errorf("%w: manual property %q must not declare value shapes", ErrSchema, p.Name)
		}
		for _, k := range p.Keywords {
			if slices.Contains(cssWide, strings.ToLower(k)) {
				return fmt.Errorf("%w: property %q lists CSS-wide keyword %q", ErrSchema, p.Name, k)
			}
		}
		if len(p.Keywords) == 0 {
			if p.Domain != "" {
				return fmt.Errorf("%w: property %q has a domain but no keywords", ErrSchema, p.Name)
			}
			continue
		}
		d := p.DomainName()
		if kw, ok := domains[d]; ok && !slices.Equal(kw, p.Keywords) {
			return fmt.Errorf("%w: property %q disagrees with other members of domain %q",
				ErrSchema, p.Name, d)
		}
		domains[d] = p.Keywords
	}
	return checkIdentifiers(schema)
}

// checkIdentifiers makes sure the generated Go identifiers do not collide.
func checkIdentifiers(schema *Schema) error {
	model := buildModel(schema, Options{})
	seen := make(map[string]string)
	claim := func(id, owner string) error {
		if other, ok := seen[id]; ok {
			return fmt.Errorf("%w: identifier %s generated for both %s and %s", ErrSchema, id, other, owner)
		}
		seen[id] = owner
		return nil
	}
	for _, d := range model.Domains {
		if err := claim(d.Type, "domain "+d.Name); err != nil {
			return err
		}
		for _, k := range d.Keywords {
			if err := claim(k.Const, "keyword "+k.Text); err != nil {
				return err
			}
		}
	}
	for _, p := range model.Properties {
		if err := claim(p.Const, "property "+p.Name); err != nil {
			return err
		}
		for _, f := range p.funcs() {
			if err := claim(f, "property "+p.Name); err != nil {
				return err
			}
		}
	}
	return nil
}
