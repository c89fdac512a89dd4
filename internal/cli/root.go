// Package cli implements the tasknlp command line.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tasknotes-nlp/config"
	"tasknotes-nlp/internal/language"
	"tasknotes-nlp/internal/parser"
	"tasknotes-nlp/internal/parser/usecase"
	"tasknotes-nlp/internal/vocabulary"
	"tasknotes-nlp/pkg/log"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	lang       string
	timezone   string
	vocabFile  string
}

// app is what a subcommand needs to parse and describe tasks.
type app struct {
	cfg      *config.Config
	registry *language.Registry
	uc       parser.UseCase
	loc      *time.Location
}

// NewRootCmd builds the tasknlp command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "tasknlp",
		Short: "Turn natural-language task lines into structured tasks",
		Long: `tasknlp extracts dates, priorities, statuses, tags, contexts, projects,
recurrence and estimates from a single line of English or Spanish text.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "Config file (default: ./config/config.yaml when present)")
	flags.StringVarP(&o.lang, "lang", "l", "", "Language code, e.g. en, es, es-MX")
	flags.StringVar(&o.timezone, "tz", "", "IANA timezone for relative dates")
	flags.StringVar(&o.vocabFile, "vocab", "", "Custom priority/status vocabulary (.json or .toml)")

	cmd.AddCommand(newParseCmd(o), newPreviewCmd(o), newChecklistCmd(o), newLanguagesCmd(o))
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) load() (*app, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.lang != "" {
		cfg.NLP.Language = o.lang
	}
	if o.timezone != "" {
		cfg.NLP.Timezone = o.timezone
	}
	if o.vocabFile != "" {
		cfg.NLP.VocabularyFile = o.vocabFile
	}

	opts, err := vocabulary.FromConfig(cfg.NLP)
	if err != nil {
		return nil, err
	}
	registry, err := language.NewRegistry(cfg.NLP.Language, opts)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.NLP.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", parser.ErrInvalidTimezone, err)
	}
	// Log output shares stdout with command results.
	uc, err := usecase.New(log.NewNop(), cfg.NLP.Timezone)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, registry: registry, uc: uc, loc: loc}, nil
}
