package switchboard

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrInvalidBindTarget    = errors.New("bind target must be a non-nil pointer to a struct")
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)

// FieldBinding ties one struct field to a switch, or to the leftovers.
type FieldBinding struct {
	FieldName  string
	FieldIndex int
	Tag        SwitchTag
}

// BindingPlan is the list of field bindings found on a struct type.
type BindingPlan struct {
	StructType reflect.Type
	Bindings   []FieldBinding
}

var _bindingCache = NewBindingCache()

// BuildBindingPlan inspects the `switch` tags of a struct type. Fields
// without a tag, or tagged "-", are not bound.
func BuildBindingPlan(t reflect.Type) (*BindingPlan, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidBindTarget, t)
	}

	plan := &BindingPlan{StructType: t}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		raw, ok := field.Tag.Lookup(SwitchTagName)
		if !ok {
			continue
		}

		tag, err := ParseSwitchTag(raw)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if tag.Ignore {
			continue
		}
		if !field.IsExported() {
			return nil, fmt.Errorf("field %s: %w: field is not exported", field.Name, ErrInvalidBindTarget)
		}
		if tag.Leftovers && field.Type != StringSliceType {
			return nil, fmt.Errorf("field %s: %w", field.Name, ErrInvalidLeftoversType)
		}

		plan.Bindings = append(plan.Bindings, FieldBinding{
			FieldName:  field.Name,
			FieldIndex: i,
			Tag:        tag,
		})
	}
	return plan, nil
}

// Bind copies the result onto dest, a pointer to a struct whose fields
// carry `switch` tags:
//
//	type Options struct {
//	    Verbose  int      `switch:"verbose"`   // how many times -v was given
//	    Version  bool     `switch:"version"`   // whether --version was given
//	    Include  string   `switch:"include"`   // first value
//	    Libs     []string `switch:"library"`   // every value
//	    Rest     []string `switch:",leftovers"`
//	}
//
// Fields of switches that were not matched are left untouched. A tag
// naming a switch that is not in the registry fails with an
// *UnknownSwitchError.
func (r *ParseResult) Bind(dest any) error {
	if dest == nil {
		return ErrInvalidBindTarget
	}
	value := reflect.ValueOf(dest)
	if value.Kind() != reflect.Ptr || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidBindTarget, dest)
	}
	elem := value.Elem()

	plan, err := _bindingCache.GetOrCreate(elem.Type(), func() (*BindingPlan, error) {
		return BuildBindingPlan(elem.Type())
	})
	if err != nil {
		return err
	}

	for _, fb := range plan.Bindings {
		field := elem.Field(fb.FieldIndex)

		if fb.Tag.Leftovers {
			field.Set(reflect.ValueOf(r.Leftovers()))
			continue
		}

		m, err := r.Get(fb.Tag.Name)
		if err != nil {
			return fmt.Errorf("field %s: %w", fb.FieldName, err)
		}
		if m.InvokeCount() == 0 {
			continue
		}
		if err := bindMatch(field, m); err != nil {
			return fmt.Errorf("field %s (switch %s): %w", fb.FieldName, m.Definition().DisplayName(), err)
		}
	}
	return nil
}

// bindMatch stores one aggregate match in field. Switches without an
// argument are counted; slices receive every value, anything else the
// first one.
func bindMatch(field reflect.Value, m *Match) error {
	if !m.Definition().HasArgument() {
		return setCountValue(field, m.InvokeCount())
	}
	if len(m.values) == 0 {
		return nil
	}

	if field.Kind() == reflect.Slice && field.Type().Elem().Kind() != reflect.Uint8 {
		slice := reflect.MakeSlice(field.Type(), len(m.values), len(m.values))
		for i, v := range m.values {
			if err := setFieldValue(slice.Index(i), v); err != nil {
				return err
			}
		}
		field.Set(slice)
		return nil
	}

	return setFieldValue(field, m.values[0])
}
