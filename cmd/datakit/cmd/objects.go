package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/datakit/core/log"
	"github.com/msto63/datakit/internal/cli/render"
	"github.com/msto63/datakit/utils/mapx"
)

func newObjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "objects",
		Aliases: []string{"obj", "o"},
		Short:   "Objekte abfragen und zusammenführen",
		Long: `Arbeitet auf Objekten aus einer YAML- oder JSON-Datei.
Mit "-" als Datei wird die Standardeingabe gelesen.`,
	}
	cmd.AddCommand(
		newGetCmd(a),
		newHasCmd(a),
		newMergeCmd(a),
		newCSSVarsCmd(a),
	)
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <datei> <pfad>",
		Short: "Liest einen Wert in Punktnotation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(a.in, args[0])
			if err != nil {
				return err
			}
			return a.render.Value(mapx.GetPropertyValue(doc, args[1]))
		},
	}
}

func newHasCmd(a *app) *cobra.Command {
	var values map[string]string
	cmd := &cobra.Command{
		Use:   "has <datei> [eigenschaft...]",
		Short: "Prüft Eigenschaften und Werte",
		Long: `Prüft, ob alle Eigenschaften vorhanden sind. Mit --value
key=wert muss die Eigenschaft zusätzlich den Wert tragen. Werte werden
als YAML gelesen, "42" ist also eine Zahl.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(a.in, args[0])
			if err != nil {
				return err
			}

			if len(values) == 0 {
				return render.Print(a.render, mapx.HasProperties(doc, args[1:]...))
			}
			expected := make(map[string]any, len(values))
			for key, raw := range values {
				expected[key] = parseValue(raw)
			}
			if len(args) == 1 {
				return render.Print(a.render, mapx.HasPropertiesWithValue(doc, expected))
			}
			keys := mapx.HasProperties(doc, args[1:]...)
			if ok, err := keys.Unwrap(); err != nil || !ok {
				return render.Print(a.render, keys)
			}
			return render.Print(a.render, mapx.HasPropertiesWithValue(doc, expected))
		},
	}
	cmd.Flags().StringToStringVar(&values, "value", nil, "Erwarteter Wert (key=wert)")
	return cmd
}

func newMergeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge <ziel> <quelle...>",
		Short: "Führt Objekte tief zusammen",
		Long: `Führt die Quellen der Reihe nach in das Ziel zusammen.
Objekte werden rekursiv gemischt, Listen aneinandergehängt und
null-Werte der Quelle ignoriert.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := readObject(a.in, args[0])
			if err != nil {
				return err
			}
			for _, path := range args[1:] {
				source, err := readObject(a.in, path)
				if err != nil {
					return err
				}
				merged = mapx.Merge(merged, source)
			}
			a.logger.Debug("Objekte zusammengeführt", log.Fields{"sources": len(args) - 1})
			return a.render.Value(merged)
		},
	}
}

func newCSSVarsCmd(a *app) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "cssvars <datei>",
		Short: "Erzeugt CSS-Variablen aus einem Objekt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(a.in, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("prefix") {
				prefix = a.settings.CSS.Prefix
			}
			return render.Print(a.render, mapx.MapToCSSVars(doc, prefix))
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Präfix der Variablennamen (default: css.prefix)")
	return cmd
}
