package switchboard

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Helpers
///////////////////////////////////////////////////////////////////////////////

// setFieldValue converts a switch value and stores it in field.
//
// Currently supports:
//   - time.Duration, uuid.UUID, and time.Time in the common layouts
//   - encoding.TextUnmarshaler (on the value's pointer)
//   - string
//   - int kinds (with overflow checking)
//   - uint kinds (with overflow checking)
//   - float kinds (with overflow checking)
//   - bool
//   - []byte (raw bytes)
//   - pointers to any of the above
func setFieldValue(field reflect.Value, value string) error {
	if field.Kind() == reflect.Ptr {
		ptr := reflect.New(field.Type().Elem())
		if err := setFieldValue(ptr.Elem(), value); err != nil {
			return err
		}
		field.Set(ptr)
		return nil
	}

	switch field.Type() {
	case DurationType:
		return setDurationValue(field, value)
	case UUIDType:
		return setUUIDValue(field, value)
	case TimeType:
		return setTimeValue(field, value)
	}

	if field.CanAddr() {
		if unmarshaler, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return unmarshaler.UnmarshalText([]byte(value))
		}
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setIntValue(field, value)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUintValue(field, value)
	case reflect.Float32, reflect.Float64:
		return setFloatValue(field, value)
	case reflect.Bool:
		return setBoolValue(field, value)
	case reflect.Slice:
		if field.Type().Elem().Kind() == reflect.Uint8 {
			field.SetBytes([]byte(value))
			return nil
		}
	}

	return fmt.Errorf("%w: %s", ErrUnsupportedFieldType, field.Type())
}

// setIntValue sets integer field values with overflow checking
func setIntValue(field reflect.Value, value string) error {
	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting value to int: %w", err)
	}
	if field.OverflowInt(intValue) {
		return fmt.Errorf("value %d overflows %s", intValue, field.Type())
	}
	field.SetInt(intValue)
	return nil
}

// setUintValue sets unsigned integer field values with overflow checking
func setUintValue(field reflect.Value, value string) error {
	uintValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return fmt.Errorf("error converting value to uint: %w", err)
	}
	if field.OverflowUint(uintValue) {
		return fmt.Errorf("value %d overflows %s", uintValue, field.Type())
	}
	field.SetUint(uintValue)
	return nil
}

// setFloatValue sets float field values with overflow checking
func setFloatValue(field reflect.Value, value string) error {
	floatValue, err := strconv.ParseFloat(value, field.Type().Bits())
	if err != nil {
		return fmt.Errorf("error converting value to float: %w", err)
	}
	if field.OverflowFloat(floatValue) {
		return fmt.Errorf("value %f overflows %s", floatValue, field.Type())
	}
	field.SetFloat(floatValue)
	return nil
}

// setBoolValue accepts the usual command-line spellings of a boolean:
// true/false, 1/0, yes/no and on/off, in any case.
func setBoolValue(field reflect.Value, value string) error {
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		field.SetBool(true)
	case "false", "0", "no", "off":
		field.SetBool(false)
	default:
		return fmt.Errorf("error converting value to bool: %q", value)
	}
	return nil
}

func setDurationValue(field reflect.Value, value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("error converting value to time.Duration: %w", err)
	}
	field.SetInt(int64(d))
	return nil
}

func setUUIDValue(field reflect.Value, value string) error {
	id, err := uuid.Parse(value)
	if err != nil {
		return fmt.Errorf("error converting value to UUID: %w", err)
	}
	field.Set(reflect.ValueOf(id))
	return nil
}

var timeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	time.TimeOnly,
}

func setTimeValue(field reflect.Value, value string) error {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			field.Set(reflect.ValueOf(t))
			return nil
		}
	}
	return fmt.Errorf("error converting value to time.Time: %q matches no known layout", value)
}

// setCountValue stores how many times a switch without an argument was
// seen: true for bool fields, the count itself for integer fields.
func setCountValue(field reflect.Value, count int) error {
	switch field.Kind() {
	case reflect.Bool:
		field.SetBool(count > 0)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.OverflowInt(int64(count)) {
			return fmt.Errorf("count %d overflows %s", count, field.Type())
		}
		field.SetInt(int64(count))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if field.OverflowUint(uint64(count)) {
			return fmt.Errorf("count %d overflows %s", count, field.Type())
		}
		field.SetUint(uint64(count))
	default:
		return fmt.Errorf("%w: %s cannot hold a switch without an argument", ErrUnsupportedFieldType, field.Type())
	}
	return nil
}
