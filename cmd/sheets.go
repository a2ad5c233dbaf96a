package cmd

import (
	"github.com/spf13/cobra"

	"github.com/traveloka/gsuite-go/internal/sheets"
)

func newSheetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Read Google Sheets values",
	}

	cmd.AddCommand(newSheetsValuesCmd())

	return cmd
}

func newSheetsValuesCmd() *cobra.Command {
	var majorDimension, valueRenderOption string

	cmd := &cobra.Command{
		Use:   "values <spreadsheet-id> <range>",
		Short: "Read a range of values from a spreadsheet",
		Long: `Read a range of values from a spreadsheet. The range is given in A1
notation, for example 'Sheet1!A1:C10'.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := sheets.NewClient(cmd.Context(), authConfig())
			if err != nil {
				return err
			}

			values, err := client.GetValues(cmd.Context(), args[0], args[1], &sheets.ValueOptions{
				MajorDimension:    majorDimension,
				ValueRenderOption: valueRenderOption,
			})
			if err != nil {
				return err
			}
			return printJSON(values)
		},
	}

	cmd.Flags().StringVar(&majorDimension, "major-dimension", sheets.DefaultMajorDimension, "Major dimension of the results: ROWS or COLUMNS")
	cmd.Flags().StringVar(&valueRenderOption, "value-render-option", sheets.DefaultValueRenderOption, "Value rendering: FORMATTED_VALUE, UNFORMATTED_VALUE or FORMULA")

	return cmd
}
