package vocabulary

import (
	"tasknotes-nlp/config"
	"tasknotes-nlp/internal/language"
)

// FromConfig returns the pack options named by cfg. A vocabulary file wins over the
// inline lists.
func FromConfig(cfg config.NLPConfig) (language.Options, error) {
	if cfg.VocabularyFile != "" {
		f, err := Load(cfg.VocabularyFile)
		if err != nil {
			return language.Options{}, err
		}
		return f.Options(), nil
	}
	return language.Options{
		Priorities: toTerms(cfg.Priorities),
		Statuses:   toTerms(cfg.Statuses),
	}, nil
}

func toTerms(in []config.TermConfig) []language.Term {
	if len(in) == 0 {
		return nil
	}
	out := make([]language.Term, 0, len(in))
	for _, t := range in {
		out = append(out, language.Term{ID: t.ID, Label: t.Label})
	}
	return out
}
