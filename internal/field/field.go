// Package field parses the field-definition DSL used by forge commands.
//
// Format: "name[?][:type[?]][:modifier...]"
// Examples: "title:string", "bio?", "status:enum:draft,published",
// "userId:references:user", "email:string:unique".
package field

import (
	"errors"
	"fmt"
)

// Kind is the dialect-independent type of a field.
type Kind string

const (
	KindString    Kind = "string"
	KindText      Kind = "text"
	KindInteger   Kind = "integer"
	KindBigint    Kind = "bigint"
	KindBoolean   Kind = "boolean"
	KindFloat     Kind = "float"
	KindDecimal   Kind = "decimal"
	KindTimestamp Kind = "timestamp"
	KindDate      Kind = "date"
	KindJSON      Kind = "json"
	KindUUID      Kind = "uuid"
	KindEnum      Kind = "enum"
	KindReference Kind = "reference"
)

// ScalarKinds lists every kind except enum and reference.
var ScalarKinds = []Kind{
	KindString, KindText, KindInteger, KindBigint, KindBoolean,
	KindFloat, KindDecimal, KindTimestamp, KindDate, KindJSON, KindUUID,
}

// Kinds lists every kind, scalars first.
var Kinds = append(append([]Kind{}, ScalarKinds...), KindEnum, KindReference)

// Field is the parsed, dialect-independent representation of one field
// definition.
type Field struct {
	Name            string   // camelCase identifier
	Kind            Kind     // resolved abstract type
	Nullable        bool     // trailing '?' on the name or type segment
	Unique          bool     // literal "unique" modifier segment
	EnumValues      []string // Kind == KindEnum only, never empty
	ReferenceTarget string   // Kind == KindReference only, singular model name
}

// ErrInvalidField is wrapped by every validation error this package returns.
var ErrInvalidField = errors.New("invalid field definition")

// ValidationError reports a field definition that violates the grammar.
type ValidationError struct {
	Spec   string // the raw field definition
	Token  string // the offending segment
	Reason string // what was expected
}

func (e *ValidationError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("invalid field %q: token %q: %s", e.Spec, e.Token, e.Reason)
	}
	return fmt.Sprintf("invalid field %q: %s", e.Spec, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidField }
