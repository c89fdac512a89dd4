package usecase

import (
	"fmt"
	"time"

	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/parser"
	"tasknotes-nlp/pkg/datemath"
	"tasknotes-nlp/pkg/log"
)

// recognizer is the date/time recognition collaborator.
type recognizer interface {
	Recognize(text string, ref time.Time) ([]datemath.Match, error)
}

// implUseCase is the private implementation of parser.UseCase.
type implUseCase struct {
	l           log.Logger
	recognizers map[language.Code]recognizer
}

// New creates a parser UseCase resolving dates in timezone (IANA name, "" for UTC).
func New(l log.Logger, timezone string) (parser.UseCase, error) {
	recognizers := make(map[language.Code]recognizer, len(language.Codes))
	for _, code := range language.Codes {
		r, err := datemath.NewRecognizer(datemath.Locale(code), timezone)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", parser.ErrInvalidTimezone, err)
		}
		recognizers[code] = r
	}

	return &implUseCase{
		l:           l,
		recognizers: recognizers,
	}, nil
}
