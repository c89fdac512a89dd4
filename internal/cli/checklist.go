package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tasknotes-nlp/internal/checklist"
	"tasknotes-nlp/internal/model"
	"tasknotes-nlp/internal/parser"
)

type checklistOutput struct {
	Tasks    []model.ParsedTask `json:"tasks"`
	Stats    checklist.Stats    `json:"stats"`
	Language string             `json:"language"`
}

func newChecklistCmd(o *options) *cobra.Command {
	var (
		due    bool
		now    string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Parse every checkbox of a markdown task list read from stdin",
		Long: `Parse every "- [ ]" or "- [x]" line of a markdown document as a task line.
Checked boxes mark the task as completed.`,
		Example: `  printf -- '- [ ] Call mom tomorrow\n- [x] Pay rent #home' | tasknlp checklist`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.load()
			if err != nil {
				return err
			}

			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			ref, err := parseNow(now, a.loc)
			if err != nil {
				return err
			}

			items := checklist.Parse(string(b))
			pack := a.registry.Pack()
			tasks := make([]model.ParsedTask, 0, len(items))
			for _, it := range items {
				task, err := a.uc.Parse(cmd.Context(), pack, parser.ParseInput{
					Text:               it.Text,
					Now:                ref,
					DefaultToScheduled: a.cfg.NLP.DefaultToScheduled && !due,
				})
				if err != nil {
					return fmt.Errorf("line %d: %w", it.Line, err)
				}
				completed := it.Checked
				task.IsCompleted = &completed
				tasks = append(tasks, task)
			}
			stats := checklist.Summarize(items)

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), checklistOutput{Tasks: tasks, Stats: stats, Language: string(pack.Code())})
			}

			w := cmd.OutOrStdout()
			for _, task := range tasks {
				preview, err := a.uc.Preview(cmd.Context(), pack, task)
				if err != nil {
					return err
				}
				if err := writeChecklistTask(w, task, preview); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(w, "%d/%d done (%.0f%%)\n", stats.Completed, stats.Total, stats.Progress)
			return err
		},
	}

	cmd.Flags().BoolVar(&due, "due", false, "Send a bare date to the due slot instead of scheduled")
	cmd.Flags().StringVar(&now, "now", "", "Reference time for relative dates (RFC 3339 or 2006-01-02 15:04)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the tasks as JSON")
	return cmd
}

// writeChecklistTask prints the task title as a checkbox followed by its other preview lines.
func writeChecklistTask(w io.Writer, task model.ParsedTask, preview []model.PreviewEntry) error {
	box := "[ ]"
	if task.IsCompleted != nil && *task.IsCompleted {
		box = "[x]"
	}
	if _, err := fmt.Fprintf(w, "- %s %s\n", box, task.Title); err != nil {
		return err
	}
	for _, e := range preview {
		if e.Category == model.PreviewTitle {
			continue
		}
		if _, err := fmt.Fprintf(w, "    %s\n", e.Text); err != nil {
			return err
		}
	}
	return nil
}
