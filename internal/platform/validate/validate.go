// Package validate traduce las reglas de go-playground/validator a un único
// apperr.Invalid (el primer problema encontrado, como mensaje).
//
// Los modelos declaran sus reglas con el tag `validate` y, opcionalmente, el
// mensaje exacto con el tag `msg`. Checker sirve para las reglas sueltas que
// no viven en un struct.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pawfam-api/internal/platform/apperr"

	"github.com/go-playground/validator/v10"
)

// Tags propios registrados en el validator.
const (
	ZipCode6     = "zip6"
	Mobile10     = "mobile10"
	IndianPhone  = "inphone"
	EmailPattern = "emailaddr"
)

var patterns = map[string]*regexp.Regexp{
	ZipCode6:     regexp.MustCompile(`^\d{6}$`),
	Mobile10:     regexp.MustCompile(`^[0-9]{10}$`),
	IndianPhone:  regexp.MustCompile(`^[6-9]\d{9}$`),
	EmailPattern: regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
}

var (
	engine     = newEngine()
	oneOfSplit = regexp.MustCompile(`'[^']*'|\S+`)
)

func newEngine() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	for tag, re := range patterns {
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return re.MatchString(strings.TrimSpace(fl.Field().String()))
		}); err != nil {
			panic(err)
		}
	}
	return v
}

// fieldName usa el nombre json; sin tag json, el nombre del campo en lowerCamel.
func fieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name[:1]) + f.Name[1:]
	}
	return name
}

type Checker struct {
	problems []string
}

func New() *Checker { return &Checker{} }

func (c *Checker) add(msg string) {
	c.problems = append(c.problems, msg)
}

// Check agrega msg si ok es false.
func (c *Checker) Check(ok bool, msg string) *Checker {
	if !ok {
		c.add(msg)
	}
	return c
}

func (c *Checker) rule(v any, tag, msg string) *Checker {
	return c.Check(engine.Var(v, tag) == nil, msg)
}

// Struct aplica los tags `validate` de s y agrega un mensaje por campo inválido.
func (c *Checker) Struct(s any) *Checker {
	err := engine.Struct(s)
	if err == nil {
		return c
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		c.add(err.Error())
		return c
	}
	root := reflect.TypeOf(s)
	for _, fe := range fieldErrs {
		c.add(message(root, fe))
	}
	return c
}

func (c *Checker) Required(field, v string) *Checker {
	return c.rule(strings.TrimSpace(v), "required", fmt.Sprintf("%s is required", field))
}

// Length cuenta runas; max <= 0 significa sin tope.
func (c *Checker) Length(field, v string, min, max int) *Checker {
	v = strings.TrimSpace(v)
	if max > 0 {
		return c.rule(v, fmt.Sprintf("min=%d,max=%d", min, max), lengthMessage(field, min, max))
	}
	return c.rule(v, fmt.Sprintf("min=%d", min), lengthMessage(field, min, 0))
}

func (c *Checker) OneOf(field, v string, allowed ...string) *Checker {
	return c.rule(v, "oneof="+oneOfParam(allowed),
		fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
}

// Match valida v contra uno de los tags propios (ZipCode6, Mobile10, ...).
func (c *Checker) Match(v, tag, msg string) *Checker {
	return c.rule(strings.TrimSpace(v), tag, msg)
}

// MatchOptional solo valida si hay valor.
func (c *Checker) MatchOptional(v, tag, msg string) *Checker {
	return c.rule(strings.TrimSpace(v), "omitempty,"+tag, msg)
}

func (c *Checker) Range(field string, v, min, max float64) *Checker {
	return c.rule(v, fmt.Sprintf("gte=%g,lte=%g", min, max), fmt.Sprintf("%s must be between %g and %g", field, min, max))
}

func (c *Checker) NonNegative(field string, v float64) *Checker {
	return c.rule(v, "gte=0", fmt.Sprintf("%s cannot be negative", field))
}

func (c *Checker) Problems() []string {
	return append([]string(nil), c.problems...)
}

func (c *Checker) Err() error {
	if len(c.problems) == 0 {
		return nil
	}
	return apperr.Invalid(c.problems[0])
}

// Struct es el atajo para validar un modelo completo.
func Struct(s any) error {
	return New().Struct(s).Err()
}

// oneOfParam arma el parámetro de oneof; las opciones con espacios van entre comillas simples.
func oneOfParam(options []string) string {
	quoted := make([]string, len(options))
	for i, o := range options {
		if strings.ContainsAny(o, " \t") {
			o = "'" + o + "'"
		}
		quoted[i] = o
	}
	return strings.Join(quoted, " ")
}

func lengthMessage(field string, min, max int) string {
	if max > 0 {
		return fmt.Sprintf("%s must be between %d and %d characters", field, min, max)
	}
	return fmt.Sprintf("%s must be at least %d characters", field, min)
}

func message(root reflect.Type, fe validator.FieldError) string {
	sf, found := lookupField(root, fe.StructNamespace())
	if found {
		if m := sf.Tag.Get("msg"); m != "" {
			return m
		}
	}
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "oneof":
		opts := oneOfSplit.FindAllString(fe.Param(), -1)
		for i := range opts {
			opts[i] = strings.Trim(opts[i], "'")
		}
		return fmt.Sprintf("%s must be one of: %s", name, strings.Join(opts, ", "))
	case "min", "max", "gte", "lte":
		lo, hi := bounds(sf.Tag.Get("validate"))
		if fe.Kind() == reflect.String {
			min, _ := strconv.Atoi(lo)
			max, _ := strconv.Atoi(hi)
			return lengthMessage(name, min, max)
		}
		switch {
		case lo != "" && hi != "":
			return fmt.Sprintf("%s must be between %s and %s", name, lo, hi)
		case lo == "0":
			return fmt.Sprintf("%s cannot be negative", name)
		case lo != "":
			return fmt.Sprintf("%s must be at least %s", name, lo)
		}
		return fmt.Sprintf("%s must be at most %s", name, hi)
	}
	return fmt.Sprintf("%s is invalid", name)
}

// bounds lee min/gte y max/lte del tag validate del campo.
func bounds(tag string) (lo, hi string) {
	for _, part := range strings.Split(tag, ",") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch k {
		case "min", "gte":
			lo = v
		case "max", "lte":
			hi = v
		}
	}
	return lo, hi
}

// lookupField recorre "Center.OperatingHours.OpenTime" (o "Center.Services[0]")
// hasta el campo del struct que falló.
func lookupField(root reflect.Type, namespace string) (reflect.StructField, bool) {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return reflect.StructField{}, false
	}
	t := root
	var sf reflect.StructField
	for _, p := range parts[1:] {
		if i := strings.IndexByte(p, '['); i >= 0 {
			p = p[:i]
		}
		for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		f, ok := t.FieldByName(p)
		if !ok {
			return reflect.StructField{}, false
		}
		sf, t = f, f.Type
	}
	return sf, true
}

// dateLayouts son los formatos que mandan los formularios: ISO completo o solo fecha.
var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// ParseDate interpreta fechas sin zona como UTC.
func ParseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
