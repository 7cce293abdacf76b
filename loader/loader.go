package loader

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/kbukum/authzkit/rebac"
	"github.com/kbukum/authzkit/validation"
)

// Document is the root of a YAML graph document.
type Document struct {
	Entities []EntitySpec `yaml:"entities" mapstructure:"entities" validate:"required,min=1,dive"`
}

// EntitySpec describes one entity to load. Parents and Links hold type:id
// references; Relations hold bare user ids.
type EntitySpec struct {
	Type      string              `yaml:"type" mapstructure:"type" validate:"required"`
	ID        string              `yaml:"id" mapstructure:"id"`
	Name      string              `yaml:"name" mapstructure:"name"`
	Content   string              `yaml:"content" mapstructure:"content"`
	Attrs     map[string]string   `yaml:"attrs" mapstructure:"attrs"`
	Parents   map[string]string   `yaml:"parents" mapstructure:"parents"`
	Relations map[string][]string `yaml:"relations" mapstructure:"relations"`
	Links     map[string][]string `yaml:"links" mapstructure:"links"`
}

// LoadFile reads a YAML graph document from disk and applies it to the
// store. It returns the number of entities loaded.
func LoadFile(store *rebac.Store, path string) (int, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return 0, fmt.Errorf("loader: read %s: %w", path, err)
	}
	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return 0, fmt.Errorf("loader: unmarshal %s: %w", path, err)
	}
	return Load(store, &doc)
}

// Load applies a graph document to the store. The whole document is
// validated and parsed first; on any failure nothing is applied.
func Load(store *rebac.Store, doc *Document) (int, error) {
	if err := validation.Struct(doc); err != nil {
		return 0, err
	}

	entities := make([]*rebac.Entity, 0, len(doc.Entities))
	for i := range doc.Entities {
		e, err := buildEntity(&doc.Entities[i])
		if err != nil {
			return 0, fmt.Errorf("loader: entity %d: %w", i, err)
		}
		entities = append(entities, e)
	}

	for _, e := range entities {
		store.Put(e)
	}
	return len(entities), nil
}

func buildEntity(spec *EntitySpec) (*rebac.Entity, error) {
	if err := validation.Struct(spec); err != nil {
		return nil, err
	}
	id := spec.ID
	if id == "" {
		id = uuid.NewString()
	}

	e := rebac.NewEntity(spec.Type, id).
		WithName(spec.Name).
		WithContent(spec.Content)
	for k, v := range spec.Attrs {
		e.SetAttr(k, v)
	}
	for rel, ref := range spec.Parents {
		parent, err := rebac.ParseRef(ref)
		if err != nil {
			return nil, fmt.Errorf("parent %q: %w", rel, err)
		}
		e.SetParent(rel, parent)
	}
	for rel, users := range spec.Relations {
		e.AddRelation(rel, users...)
	}
	for rel, refs := range spec.Links {
		for _, ref := range refs {
			linked, err := rebac.ParseRef(ref)
			if err != nil {
				return nil, fmt.Errorf("link %q: %w", rel, err)
			}
			e.AddLink(rel, linked)
		}
	}
	return e, nil
}
