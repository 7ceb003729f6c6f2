package field

import (
	"regexp"
	"strings"
)

// nameRe matches a camelCase identifier: lowercase first letter, then
// letters and digits only.
var nameRe = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)

// typeAliases maps accepted spellings onto canonical kinds.
var typeAliases = map[string]Kind{
	"string":     KindString,
	"text":       KindText,
	"integer":    KindInteger,
	"int":        KindInteger,
	"number":     KindInteger,
	"bigint":     KindBigint,
	"boolean":    KindBoolean,
	"bool":       KindBoolean,
	"float":      KindFloat,
	"decimal":    KindDecimal,
	"timestamp":  KindTimestamp,
	"datetime":   KindTimestamp,
	"date":       KindDate,
	"json":       KindJSON,
	"uuid":       KindUUID,
	"enum":       KindEnum,
	"references": KindReference,
	"reference":  KindReference,
}

// validTypes is the list shown in error messages, canonical names only.
var validTypes = "string, text, integer, bigint, boolean, float, decimal, timestamp, date, json, uuid, enum, references"

// Parse parses a single field definition.
//
// The raw string is split on ':'. Segment 0 is the name, segment 1 the type
// (defaults to string), remaining segments are modifiers. A trailing '?' on
// the name or the type segment marks the field nullable; the literal
// "unique" among the modifier segments marks it unique. enum takes its
// value list and references its target model from segment 2.
func Parse(raw string) (Field, error) {
	segments := strings.Split(raw, ":")

	name, nullableName := stripNullable(segments[0])
	if name == "" {
		return Field{}, &ValidationError{Spec: raw, Reason: "field name is required"}
	}
	if !nameRe.MatchString(name) {
		return Field{}, &ValidationError{
			Spec: raw, Token: name,
			Reason: "name must be a camelCase identifier (lowercase letter followed by letters/digits)",
		}
	}

	typeToken := "string"
	nullableType := false
	if len(segments) > 1 {
		typeToken, nullableType = stripNullable(segments[1])
	}

	kind, ok := typeAliases[typeToken]
	if !ok {
		return Field{}, &ValidationError{
			Spec: raw, Token: typeToken,
			Reason: "unknown type (valid: " + validTypes + ")",
		}
	}

	f := Field{
		Name:     name,
		Kind:     kind,
		Nullable: nullableName || nullableType,
	}

	var modifiers []string
	if len(segments) > 2 {
		modifiers = segments[2:]
	}
	for _, m := range modifiers {
		if m == "unique" {
			f.Unique = true
		}
	}

	switch kind {
	case KindEnum:
		// Segment 2 is consumed positionally as the value list. The
		// literal "unique" there counts as a missing list, not a value.
		if len(modifiers) == 0 || modifiers[0] == "" || modifiers[0] == "unique" {
			return Field{}, &ValidationError{
				Spec: raw, Token: typeToken,
				Reason: "enum requires a comma-separated value list (e.g. status:enum:draft,published)",
			}
		}
		f.EnumValues = splitEnumValues(modifiers[0])
		if len(f.EnumValues) == 0 {
			return Field{}, &ValidationError{
				Spec: raw, Token: modifiers[0],
				Reason: "enum value list is empty",
			}
		}
	case KindReference:
		if len(modifiers) == 0 || modifiers[0] == "" || modifiers[0] == "unique" {
			return Field{}, &ValidationError{
				Spec: raw, Token: typeToken,
				Reason: "references requires a target model (e.g. userId:references:user)",
			}
		}
		target := modifiers[0]
		if !nameRe.MatchString(target) {
			return Field{}, &ValidationError{
				Spec: raw, Token: target,
				Reason: "reference target must be a camelCase identifier",
			}
		}
		f.ReferenceTarget = target
	}

	return f, nil
}

// ParseAll parses a list of field definitions, failing on the first
// invalid one.
func ParseAll(raws []string) ([]Field, error) {
	var fields []Field
	for _, raw := range raws {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		f, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// stripNullable removes a single trailing '?' and reports whether it was
// present.
func stripNullable(token string) (string, bool) {
	if strings.HasSuffix(token, "?") {
		return token[:len(token)-1], true
	}
	return token, false
}

// splitEnumValues splits a comma-joined enum list, dropping empty entries.
func splitEnumValues(s string) []string {
	var values []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		values = append(values, v)
	}
	return values
}
