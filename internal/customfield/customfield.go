// Package customfield manages user defined fields of a profile.
package customfield

import (
	"strings"

	"github.com/budget-tracker/backend/internal/validate"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// MaxNameLength is the maximum length of a field name.
const MaxNameLength = 50

// Type is the kind of value a field holds.
type Type string

const (
	TypeText     Type = "text"
	TypeNumber   Type = "number"
	TypeCurrency Type = "currency"
	TypeTextarea Type = "textarea"
)

// Valid reports whether t is a known field type.
func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeNumber, TypeCurrency, TypeTextarea:
		return true
	}
	return false
}

type Field struct {
	Name string `json:"name" example:"Objectif d'épargne"`
	Type Type   `json:"type" example:"currency"`
}

// Set holds the field definitions and their values.
type Set struct {
	fields []Field
	values map[string]string
}

func NewSet() *Set {
	return &Set{values: make(map[string]string)}
}

// Add defines a new field. Names are unique.
func (s *Set) Add(f Field) (Field, error) {
	f.Name = strings.TrimSpace(f.Name)
	if err := validate.Text("name", f.Name, MaxNameLength); err != nil {
		return Field{}, err
	}

	if !f.Type.Valid() {
		return Field{}, validate.New(validate.KindInvalid, "type", "field type %q is not supported", f.Type)
	}

	if s.index(f.Name) >= 0 {
		return Field{}, validate.New(validate.KindDuplicate, "name", "a field named %q already exists", f.Name)
	}

	s.fields = append(s.fields, f)
	return f, nil
}

// Remove deletes a field and its value.
func (s *Set) Remove(name string) bool {
	i := s.index(name)
	if i < 0 {
		return false
	}

	s.fields = slices.Delete(s.fields, i, i+1)
	delete(s.values, name)
	return true
}

// SetValue stores the value of a defined field. Values of number and
// currency fields must be numeric. An empty value clears the field.
func (s *Set) SetValue(name, value string) (found bool, err error) {
	i := s.index(name)
	if i < 0 {
		return false, nil
	}

	value = strings.TrimSpace(value)
	if value == "" {
		delete(s.values, name)
		return true, nil
	}

	switch s.fields[i].Type {
	case TypeNumber, TypeCurrency:
		if _, err := decimal.NewFromString(value); err != nil {
			return true, validate.New(validate.KindInvalid, "value", "value of field %q must be a number", name)
		}
	}

	s.values[name] = value
	return true, nil
}

// Fields returns the field definitions in creation order.
func (s *Set) Fields() []Field {
	return slices.Clone(s.fields)
}

// Values returns a copy of all field values.
func (s *Set) Values() map[string]string {
	v := make(map[string]string, len(s.values))
	for k, val := range s.values {
		v[k] = val
	}

	return v
}

// Replace swaps definitions and values. Values without a definition are dropped.
func (s *Set) Replace(fields []Field, values map[string]string) {
	s.fields = slices.Clone(fields)
	s.values = make(map[string]string, len(values))

	for k, v := range values {
		if s.index(k) >= 0 {
			s.values[k] = v
		}
	}
}

func (s *Set) index(name string) int {
	return slices.IndexFunc(s.fields, func(f Field) bool {
		return f.Name == name
	})
}
