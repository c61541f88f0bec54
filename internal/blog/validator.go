package blog

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/blogai/blogai/backend/go-services/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

var (
	ErrInvalidJSON = errors.New("model output is not valid JSON")
	ErrNotObject   = errors.New("blog must be a JSON object")
)

// ValidationError lists every field that does not match the blog shape.
type ValidationError struct {
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 && e.Err != nil {
		return "invalid blog: " + e.Err.Error()
	}
	return "invalid blog: " + strings.Join(e.Fields, "; ")
}

func (e *ValidationError) Unwrap() error { return e.Err }

// shapes mirror Document with pointer fields so a missing or null string can
// be told apart from an empty one.
type documentShape struct {
	Title      *string        `mapstructure:"title" validate:"required"`
	Sections   []sectionShape `mapstructure:"sections" validate:"dive"`
	Conclusion *string        `mapstructure:"conclusion" validate:"required"`
}

type sectionShape struct {
	Heading     *string          `mapstructure:"heading" validate:"required"`
	Content     *string          `mapstructure:"content" validate:"required"`
	Subheadings []map[string]any `mapstructure:"subheadings" validate:"dive,required"`
}

// Outcome tags the result of interpreting a model reply.
type Outcome int

const (
	OutcomeValid Outcome = iota
	OutcomeInvalidJSON
	OutcomeInvalidSchema
)

func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeInvalidJSON:
		return "invalid_json"
	case OutcomeInvalidSchema:
		return "invalid_schema"
	}
	return "unknown"
}

// Result is either a valid candidate with its typed document, or a failure
// reason.
type Result struct {
	Outcome   Outcome
	Candidate Candidate
	Document  *Document
	Err       error
}

// Validator checks decoded model output against the blog shape. It is safe
// for concurrent use.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("mapstructure")
	})
	return &Validator{validate: v}
}

// Decode parses raw model text as JSON. Any value is accepted here; shape is
// checked by Check.
func Decode(raw string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return v, nil
}

// Check builds the typed document from a decoded value. It returns a
// *ValidationError when the value does not have the blog shape.
func (v *Validator) Check(decoded any) (*Document, error) {
	m, ok := decoded.(map[string]any)
	if !ok {
		return nil, &ValidationError{Err: ErrNotObject}
	}

	var shape documentShape
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:    &shape,
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, &ValidationError{Fields: splitDecodeError(err), Err: err}
	}

	if err := v.validate.Struct(shape); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, &ValidationError{Err: err}
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s: field %s", fieldPath(fe.Namespace()), fe.Tag()))
		}
		return nil, &ValidationError{Fields: fields, Err: err}
	}

	return shape.document(), nil
}

// Validate reports whether decoded has the blog shape, logging the reason
// when it does not.
func (v *Validator) Validate(decoded any) bool {
	if _, err := v.Check(decoded); err != nil {
		logger.Warnf("blog validation failed: %v", err)
		return false
	}
	return true
}

// Parse runs decode and validation on raw model text.
func (v *Validator) Parse(raw string) Result {
	decoded, err := Decode(raw)
	if err != nil {
		return Result{Outcome: OutcomeInvalidJSON, Err: err}
	}
	doc, err := v.Check(decoded)
	if err != nil {
		logger.Warnf("blog validation failed: %v", err)
		return Result{Outcome: OutcomeInvalidSchema, Err: err}
	}
	return Result{Outcome: OutcomeValid, Candidate: Candidate(decoded.(map[string]any)), Document: doc}
}

func (s documentShape) document() *Document {
	d := &Document{
		Title:      *s.Title,
		Conclusion: *s.Conclusion,
		Sections:   make([]Section, 0, len(s.Sections)),
	}
	for _, sec := range s.Sections {
		subs := sec.Subheadings
		if subs == nil {
			subs = []map[string]any{}
		}
		d.Sections = append(d.Sections, Section{Heading: *sec.Heading, Content: *sec.Content, Subheadings: subs})
	}
	return d
}

// fieldPath drops the struct name from a validator namespace:
// "documentShape.sections[0].heading" -> "sections[0].heading".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func splitDecodeError(err error) []string {
	var out []string
	for _, line := range strings.Split(err.Error(), "\n") {
		line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "*"))
		if line == "" || strings.HasSuffix(line, "error(s) decoding:") {
			continue
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		out = []string{err.Error()}
	}
	return out
}
