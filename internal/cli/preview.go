package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"tasknotes-nlp/internal/model"
)

func newPreviewCmd(o *options) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "preview",
		Short:   "Describe a task read as JSON from stdin",
		Example: `  echo '{"title":"Run","recurrence":"FREQ=DAILY"}' | tasknlp preview --lang es`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.load()
			if err != nil {
				return err
			}

			task := model.NewParsedTask()
			if err := json.NewDecoder(cmd.InOrStdin()).Decode(&task); err != nil {
				return fmt.Errorf("decode task: %w", err)
			}

			pack := a.registry.Pack()
			preview, err := a.uc.Preview(cmd.Context(), pack, task)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), previewOutput{Preview: preview, Language: string(pack.Code())})
			}
			return writePreview(cmd.OutOrStdout(), preview)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the preview as JSON")
	return cmd
}
