package config

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// Custom element names start with a lowercase letter and contain at least one hyphen.
	tagNamePattern   = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)+$`)
	namespacePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("tag_name", func(fl validator.FieldLevel) bool {
			return tagNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("namespace", func(fl validator.FieldLevel) bool {
			return namespacePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// validate checks pf against its struct tags and the rules tags cannot express.
func validate(pf *Packfile) error {
	if err := validatorInstance().Struct(pf); err != nil {
		return convertValidationError(err)
	}

	for i, t := range pf.OutputTargets {
		kind := domain.TargetKind(t.Type)
		if (kind == domain.KindWWW || kind == domain.KindDist) && t.BuildDir == "" {
			err := zerr.With(domain.ErrInvalidConfig, "field", "outputtargets["+strconv.Itoa(i)+"].builddir")
			return zerr.With(err, "reason", "required for "+t.Type+" targets")
		}
	}

	return nil
}

// convertValidationError turns the first validator failure into a zerr error naming the field.
func convertValidationError(err error) error {
	ves, ok := err.(validator.ValidationErrors)
	if !ok || len(ves) == 0 {
		return zerr.Wrap(err, domain.ErrInvalidConfig.Error())
	}

	ve := ves[0]
	out := zerr.With(domain.ErrInvalidConfig, "field", yamlishFieldName(ve))
	out = zerr.With(out, "rule", ve.Tag())
	if v, ok := ve.Value().(string); ok && v != "" {
		out = zerr.With(out, "value", v)
	}
	return out
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	// Drop the root struct name.
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.ToLower(strings.Join(parts, "."))
}
