package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tasknotes-nlp/internal/parser"
)

var nowLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func newParseCmd(o *options) *cobra.Command {
	var (
		due    bool
		now    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse a task line",
		Long: `Parse a task line and print its preview.
Without arguments the task is read from stdin; lines after the first become details.`,
		Example: `  tasknlp parse "Call the doctor tomorrow high priority #health"
  tasknlp parse --lang es "Llamar al médico mañana a las 10"
  printf 'Buy milk\ntwo liters' | tasknlp parse --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.load()
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(b)
			}

			ref, err := parseNow(now, a.loc)
			if err != nil {
				return err
			}

			pack := a.registry.Pack()
			task, err := a.uc.Parse(cmd.Context(), pack, parser.ParseInput{
				Text:               text,
				Now:                ref,
				DefaultToScheduled: a.cfg.NLP.DefaultToScheduled && !due,
			})
			if err != nil {
				return err
			}
			preview, err := a.uc.Preview(cmd.Context(), pack, task)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), parseOutput{Task: task, Preview: preview, Language: string(pack.Code())})
			}
			return writePreview(cmd.OutOrStdout(), preview)
		},
	}

	cmd.Flags().BoolVar(&due, "due", false, "Send a bare date to the due slot instead of scheduled")
	cmd.Flags().StringVar(&now, "now", "", "Reference time for relative dates (RFC 3339 or 2006-01-02 15:04)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the task as JSON")
	return cmd
}

// parseNow reads the --now flag; an empty value means the current time.
func parseNow(value string, loc *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range nowLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid --now %q: want RFC 3339 or YYYY-MM-DD[ HH:MM]", value)
}
