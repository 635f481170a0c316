package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/datakit/internal/cli/render"
	"github.com/msto63/datakit/utils/typex"
)

func newTypesCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:     "types [wert]",
		Aliases: []string{"type", "t"},
		Short:   "Klassifiziert einen Wert",
		Long: `Wendet alle Typ-Prädikate auf einen Wert an. Der Wert wird
als YAML gelesen: "42" ist eine Zahl, "[1, 2]" eine Liste, "~" null.
Mit --file wird ein ganzes Dokument klassifiziert.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var value any
			switch {
			case file != "":
				doc, err := readDocument(a.in, file)
				if err != nil {
					return err
				}
				value = doc
			case len(args) == 1:
				value = parseValue(args[0])
			}

			rows := []render.Row{{Key: "kind", Value: typex.KindOf(value)}}
			for _, p := range typex.Predicates() {
				rows = append(rows, render.Row{Key: p.Name, Value: p.Test(value)})
			}
			return a.render.Table(rows)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML- oder JSON-Datei")
	return cmd
}
