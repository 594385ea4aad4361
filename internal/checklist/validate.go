package checklist

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "github.com/Vovarama1992/legalmate/internal/errors"
	"github.com/tidwall/gjson"
)

// Validate checks an already decoded JSON value (maps, slices, strings...)
// against the checklist shape.
func Validate(raw any) (Checklist, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return Checklist{}, apperrors.NewSchemaValidationError("$", "value is not JSON: "+err.Error())
	}
	return ValidateJSON(data)
}

// ValidateJSON checks raw JSON bytes. The first non-conforming path wins;
// one bad item rejects the whole checklist.
func ValidateJSON(data []byte) (Checklist, error) {
	if !gjson.ValidBytes(data) {
		return Checklist{}, apperrors.NewSchemaValidationError("$", "payload is not valid JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Checklist{}, apperrors.NewSchemaValidationError("$", "expected object, got "+typeName(root))
	}

	items := root.Get("items")
	if !items.Exists() {
		return Checklist{}, apperrors.NewSchemaValidationError("items", "required field missing")
	}
	if !items.IsArray() {
		return Checklist{}, apperrors.NewSchemaValidationError("items", "expected array, got "+typeName(items))
	}

	raw := items.Array()
	out := Checklist{Items: make([]Item, 0, len(raw))}
	seen := make(map[string]int, len(raw))

	for i, r := range raw {
		item, err := validateItem(i, r)
		if err != nil {
			return Checklist{}, err
		}
		if prev, dup := seen[item.ID]; dup {
			return Checklist{}, apperrors.NewSchemaValidationError(
				fmt.Sprintf("items[%d].id", i),
				fmt.Sprintf("duplicate id %q (also items[%d].id)", item.ID, prev))
		}
		seen[item.ID] = i
		out.Items = append(out.Items, item)
	}

	summary := root.Get("summary")
	if !summary.Exists() {
		return Checklist{}, apperrors.NewSchemaValidationError("summary", "required field missing")
	}
	if summary.Type != gjson.String {
		return Checklist{}, apperrors.NewSchemaValidationError("summary", "expected string, got "+typeName(summary))
	}
	out.Summary = summary.String()

	return out, nil
}

func validateItem(i int, r gjson.Result) (Item, error) {
	prefix := fmt.Sprintf("items[%d]", i)
	if !r.IsObject() {
		return Item{}, apperrors.NewSchemaValidationError(prefix, "expected object, got "+typeName(r))
	}

	str := func(field string) (string, error) {
		v := r.Get(field)
		if !v.Exists() {
			return "", apperrors.NewSchemaValidationError(prefix+"."+field, "required field missing")
		}
		if v.Type != gjson.String {
			return "", apperrors.NewSchemaValidationError(prefix+"."+field, "expected string, got "+typeName(v))
		}
		return v.String(), nil
	}
	enum := func(field string, allowed []string) (string, error) {
		s, err := str(field)
		if err != nil {
			return "", err
		}
		for _, a := range allowed {
			if s == a {
				return s, nil
			}
		}
		return "", apperrors.NewSchemaValidationError(prefix+"."+field,
			fmt.Sprintf("expected one of %s, got %q", strings.Join(allowed, "|"), s))
	}

	var (
		it  Item
		err error
		s   string
	)
	if it.ID, err = str("id"); err != nil {
		return Item{}, err
	}
	if it.Title, err = str("title"); err != nil {
		return Item{}, err
	}
	if it.Description, err = str("description"); err != nil {
		return Item{}, err
	}
	if s, err = enum("priority", enumValues(Priorities)); err != nil {
		return Item{}, err
	}
	it.Priority = Priority(s)
	if s, err = enum("timeframe", enumValues(Timeframes)); err != nil {
		return Item{}, err
	}
	it.Timeframe = Timeframe(s)
	if s, err = enum("category", enumValues(Categories)); err != nil {
		return Item{}, err
	}
	it.Category = Category(s)

	return it, nil
}

func typeName(r gjson.Result) string {
	switch {
	case r.IsObject():
		return "object"
	case r.IsArray():
		return "array"
	case r.Type == gjson.String:
		return "string"
	case r.Type == gjson.Number:
		return "number"
	case r.Type == gjson.True, r.Type == gjson.False:
		return "boolean"
	}
	return "null"
}
