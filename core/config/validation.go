// File: validation.go
// Title: Configuration Validation and Binding
// Description: Rule based validation of configuration values and binding of
//              sections, including arrays of tables, to Go structs.
// Author: msto63
// Version: v0.2.1
// Created: 2026-09-14
// Modified: 2026-10-17
//
// Change History:
// - 2026-09-14 v0.1.0: Initial implementation
// - 2026-10-02 v0.2.0: OneOf rules, sorted results, nested struct and slice binding
// - 2026-10-17 v0.2.1: Environment overrides apply to bound fields

package config

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/datakit/core/error"
	"github.com/msto63/datakit/utils/dotpath"
)

// ValidationRule defines criteria for a single key
type ValidationRule struct {
	Required bool
	Type     string // "string", "int", "float", "bool" or "[]string"
	OneOf    []string
	Min      *float64
	Max      *float64
	Pattern  string
}

// ValidationRules maps keys to their rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the outcome of Validate
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts an invalid result into a *mdwerror.Error, nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("invalid configuration: "+strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate checks the configuration against rules. Environment overrides
// are taken into account for string rules.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	var value interface{}
	if env, ok := c.lookupEnv(key); ok {
		value = env
	} else {
		value = c.value(key)
	}

	if value == nil {
		if rule.Required {
			return fmt.Errorf("required field '%s' is missing", key)
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if len(rule.OneOf) > 0 {
		s := fmt.Sprintf("%v", value)
		found := false
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(s, allowed) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("field '%s' value '%s' must be one of %s", key, s, strings.Join(rule.OneOf, ", "))
		}
	}

	if rule.Min != nil || rule.Max != nil {
		if n, ok := toFloat(value); ok {
			if rule.Min != nil && n < *rule.Min {
				return fmt.Errorf("field '%s' value %g is less than minimum %g", key, n, *rule.Min)
			}
			if rule.Max != nil && n > *rule.Max {
				return fmt.Errorf("field '%s' value %g is greater than maximum %g", key, n, *rule.Max)
			}
		}
	}

	if rule.Pattern != "" {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field '%s' pattern validation requires string value", key)
		}
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
		}
		if !re.MatchString(s) {
			return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, s, rule.Pattern)
		}
	}

	return nil
}

func validateType(key string, value interface{}, expected string) error {
	ok := false
	switch expected {
	case "string":
		_, ok = value.(string)
	case "int":
		switch v := value.(type) {
		case int, int64:
			ok = true
		case float64:
			ok = v == float64(int64(v))
		}
	case "float":
		_, ok = toFloat(value)
	case "bool":
		_, ok = value.(bool)
	case "[]string":
		switch v := value.(type) {
		case []string:
			ok = true
		case []interface{}:
			ok = true
			for _, item := range v {
				if _, isString := item.(string); !isString {
					ok = false
				}
			}
		}
	default:
		return fmt.Errorf("unknown validation type: %s", expected)
	}

	if !ok {
		return fmt.Errorf("field '%s' must be of type %s, got %T", key, expected, value)
	}
	return nil
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}

// BindToStruct binds the section at keyPrefix to target, a pointer to a
// struct. Fields are matched by their `config` tag or lower-cased name;
// `validate:"required"` makes a missing key an error. Nested structs bind to
// sub-sections, slices of structs to arrays of tables. Scalar and string list
// fields take environment overrides the same way the getters do, also when
// their section is missing from the file.
func (c *Config) BindToStruct(keyPrefix string, target interface{}) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return mdwerror.New("target must be a pointer to struct").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.BindToStruct")
	}

	c.mu.RLock()
	section, found := dotpath.Resolve(c.data, keyPrefix)
	c.mu.RUnlock()

	if !found {
		return mdwerror.Newf("configuration section '%s' not found", keyPrefix).
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.BindToStruct").
			WithDetail("keyPrefix", keyPrefix)
	}

	data, ok := section.(map[string]interface{})
	if !ok {
		return mdwerror.Newf("configuration key '%s' is not a section", keyPrefix).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.BindToStruct").
			WithDetail("keyPrefix", keyPrefix)
	}

	if err := c.bindStruct(rv.Elem(), data, keyPrefix); err != nil {
		return mdwerror.Wrap(err, "failed to bind configuration").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.BindToStruct").
			WithDetail("keyPrefix", keyPrefix)
	}
	return nil
}

// bindStruct fills target from data. A nil data map stands for a section
// missing from the file: its fields only take environment overrides and
// required tags are not enforced.
func (c *Config) bindStruct(target reflect.Value, data map[string]interface{}, path string) error {
	t := target.Type()
	for i := 0; i < target.NumField(); i++ {
		field := target.Field(i)
		fieldType := t.Field(i)
		if !field.CanSet() {
			continue
		}

		key := fieldType.Tag.Get("config")
		if key == "-" {
			continue
		}
		if key == "" {
			key = strings.ToLower(fieldType.Name)
		}
		fullKey := dotpath.Join(nonEmpty(path, key)...)

		value, present := data[key]
		if env, ok := c.envValue(field, fullKey); ok {
			value, present = env, true
		}
		if !present || value == nil {
			if field.Kind() == reflect.Struct {
				if err := c.bindStruct(field, nil, fullKey); err != nil {
					return err
				}
				continue
			}
			if data != nil && strings.Contains(fieldType.Tag.Get("validate"), "required") {
				return fmt.Errorf("required field '%s' not found", fullKey)
			}
			continue
		}

		if err := c.setFieldValue(field, value, fullKey); err != nil {
			return err
		}
	}
	return nil
}

// envValue returns the environment override for a scalar or string list field
func (c *Config) envValue(field reflect.Value, key string) (interface{}, bool) {
	switch field.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return c.lookupEnv(key)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return nil, false
		}
		if _, ok := c.lookupEnv(key); !ok {
			return nil, false
		}
		items := c.GetStringSlice(key)
		values := make([]interface{}, len(items))
		for i, item := range items {
			values[i] = item
		}
		return values, true
	}
	return nil, false
}

func (c *Config) setFieldValue(field reflect.Value, value interface{}, key string) error {
	switch field.Kind() {
	case reflect.String:
		if s, ok := value.(string); ok {
			field.SetString(s)
		} else {
			field.SetString(fmt.Sprintf("%v", value))
		}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var i int64
		switch v := value.(type) {
		case int:
			i = int64(v)
		case int64:
			i = v
		case float64:
			if v != float64(int64(v)) {
				return fmt.Errorf("field '%s': cannot convert %v to integer", key, v)
			}
			i = int64(v)
		case string:
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("field '%s': cannot convert '%s' to integer", key, v)
			}
			i = parsed
		default:
			return fmt.Errorf("field '%s': cannot convert %T to integer", key, value)
		}
		field.SetInt(i)

	case reflect.Float32, reflect.Float64:
		f, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("field '%s': cannot convert %v to float", key, value)
		}
		field.SetFloat(f)

	case reflect.Bool:
		switch v := value.(type) {
		case bool:
			field.SetBool(v)
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("field '%s': cannot convert '%s' to boolean", key, v)
			}
			field.SetBool(b)
		default:
			return fmt.Errorf("field '%s': cannot convert %T to boolean", key, value)
		}

	case reflect.Struct:
		section, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("field '%s' is not a section", key)
		}
		return c.bindStruct(field, section, key)

	case reflect.Slice:
		items := reflect.ValueOf(value)
		if items.Kind() != reflect.Slice {
			if field.Type().Elem().Kind() == reflect.String {
				items = reflect.ValueOf([]interface{}{value})
			} else {
				return fmt.Errorf("field '%s' is not a list", key)
			}
		}
		slice := reflect.MakeSlice(field.Type(), items.Len(), items.Len())
		for i := 0; i < items.Len(); i++ {
			if err := c.setFieldValue(slice.Index(i), items.Index(i).Interface(), fmt.Sprintf("%s.%d", key, i)); err != nil {
				return err
			}
		}
		field.Set(slice)

	default:
		return fmt.Errorf("field '%s': unsupported field type %s", key, field.Kind())
	}

	return nil
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
