// Package binding plugs English validation messages into gin's request binding.
package binding

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	ginbinding "github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	xlanguage "golang.org/x/text/language"
)

// FieldError is one failed field with its translated message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Service holds the validator gin binds with and its translator.
type Service struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once sync.Once
	svc  *Service
)

// Init configures gin's validator engine once: json field names, English messages and the
// notblank and bcp47 tags.
func Init() *Service {
	once.Do(func() {
		v, ok := ginbinding.Validator.Engine().(*validator.Validate)
		if !ok {
			v = validator.New()
			v.SetTagName("binding")
		}

		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("bcp47", func(fl validator.FieldLevel) bool {
			_, err := xlanguage.Parse(strings.ReplaceAll(fl.Field().String(), "_", "-"))
			return err == nil
		})

		registerMessage(v, trans, "notblank", "{0} must not be blank")
		registerMessage(v, trans, "bcp47", "{0} must be a language code such as en or es-MX")
		registerMessage(v, trans, "max", "{0} must be at most {1}")

		svc = &Service{Validator: v, Translator: trans}
	})
	return svc
}

// Get returns the service, initializing it on first use.
func Get() *Service {
	return Init()
}

// Translate converts a binding error to field messages. Errors that are not validation
// failures (malformed JSON) come back as a single entry without a field.
func Translate(err error) []FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	trans := Get().Translator
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe), Message: fe.Translate(trans)})
	}
	return out
}

// IsValidation reports whether err carries validator failures.
func IsValidation(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}

// fieldPath drops the root struct name from the namespace ("parseReq.priorities[0].id").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func registerMessage(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}
