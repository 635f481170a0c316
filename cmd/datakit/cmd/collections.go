// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     cmd
// Description: Collection commands (sort, group, shuffle, pick)
// Author:      Mike Stoffels
// Created:     2026-09-23
// License:     MIT
// ============================================================================

package cmd

import (
	"reflect"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/datakit/core/errors"
	"github.com/msto63/datakit/core/log"
	"github.com/msto63/datakit/internal/cli/render"
	"github.com/msto63/datakit/utils/slicex"
	"github.com/msto63/datakit/utils/typex"
)

func newCollectionsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collections",
		Aliases: []string{"col", "c"},
		Short:   "Listen sortieren, gruppieren und mischen",
		Long: `Arbeitet auf Listen aus einer YAML- oder JSON-Datei.
Mit "-" als Datei wird die Standardeingabe gelesen.

Beispiel:
  datakit collections sort posts.yaml --by date --order desc
  datakit collections group posts.yaml --by tags --many`,
	}
	cmd.AddCommand(
		newSortCmd(a),
		newGroupCmd(a),
		newUniqCmd(a),
		newContainsCmd(a),
		newShuffleCmd(a),
		newPickCmd(a),
	)
	return cmd
}

func newSortCmd(a *app) *cobra.Command {
	var by, order string
	cmd := &cobra.Command{
		Use:   "sort <datei>",
		Short: "Sortiert nach einer Eigenschaft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readList(a.in, args[0])
			if err != nil {
				return err
			}
			o, err := slicex.ParseOrder(order)
			if err != nil {
				return err
			}
			a.logger.Debug("Sortiere Liste", log.Fields{"items": len(items), "by": by, "order": string(o)})
			return render.Print(a.render, slicex.SortBy(items, by, o))
		},
	}
	cmd.Flags().StringVar(&by, "by", "", "Eigenschaft (Punktnotation)")
	cmd.Flags().StringVar(&order, "order", "asc", "Reihenfolge: asc oder desc")
	_ = cmd.MarkFlagRequired("by")
	return cmd
}

func newGroupCmd(a *app) *cobra.Command {
	var by string
	var many bool
	var include []string
	cmd := &cobra.Command{
		Use:   "group <datei>",
		Short: "Gruppiert nach einer Eigenschaft",
		Long: `Gruppiert Einträge nach einer Eigenschaft. Mit --many darf die
Eigenschaft eine Liste sein, jeder Wert bildet dann eine Gruppe.
--include beschränkt die ausgegebenen Eigenschaften.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readList(a.in, args[0])
			if err != nil {
				return err
			}
			res := slicex.GroupedByOne(items, by, include...)
			if many {
				res = slicex.GroupedByMany(items, by, include...)
			}
			groups, err := res.Unwrap()
			if err != nil {
				return err
			}
			a.logger.Debug("Gruppen gebildet", log.Fields{"groups": len(groups), "many": many})
			return a.render.Groups(groups)
		},
	}
	cmd.Flags().StringVar(&by, "by", "", "Eigenschaft (Punktnotation)")
	cmd.Flags().BoolVar(&many, "many", false, "Listenwerte einzeln gruppieren")
	cmd.Flags().StringSliceVar(&include, "include", nil, "Nur diese Eigenschaften ausgeben")
	_ = cmd.MarkFlagRequired("by")
	return cmd
}

func newUniqCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "uniq <datei>",
		Short: "Entfernt doppelte Werte",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readList(a.in, args[0])
			if err != nil {
				return err
			}
			return a.render.Value(slicex.Uniq(items))
		},
	}
}

func newContainsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contains <datei> <wert...>",
		Short: "Prüft, ob alle Werte enthalten sind",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readList(a.in, args[0])
			if err != nil {
				return err
			}
			values := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				values = append(values, parseValue(arg))
			}
			return a.render.Value(slicex.Contains(items, values...))
		},
	}
}

func newShuffleCmd(a *app) *cobra.Command {
	var by string
	cmd := &cobra.Command{
		Use:   "shuffle <datei>",
		Short: "Mischt eine Liste",
		Long: `Mischt eine Liste. Mit --by müssen alle Einträge die
Eigenschaft besitzen.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readList(a.in, args[0])
			if err != nil {
				return err
			}
			if by != "" {
				return render.Print(a.render, slicex.ShuffleByProperty(items, by))
			}
			return render.Print(a.render, slicex.Shuffle(items))
		},
	}
	cmd.Flags().StringVar(&by, "by", "", "Eigenschaft, die jeder Eintrag besitzen muss")
	return cmd
}

func newPickCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "pick <datei>",
		Short: "Wählt zufällige Werte aus",
		Long: `Wählt --count zufällige Werte ohne Wiederholung aus. Die Liste
muss einheitlich aus Texten, Zahlen oder Wahrheitswerten bestehen.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := readList(a.in, args[0])
			if err != nil {
				return err
			}
			return pick(a.render, items, count)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Anzahl der Werte")
	return cmd
}

// pick converts items to a typed scalar list before picking
func pick(r *render.Renderer, items []any, count int) error {
	if len(items) == 0 {
		return render.Print(r, slicex.PickRandom([]string{}, count))
	}
	switch typex.KindOf(items[0]) {
	case typex.KindString:
		if list, ok := scalars[string](items); ok {
			return render.Print(r, slicex.PickRandom(list, count))
		}
	case typex.KindNumber:
		if list, ok := numbers(items); ok {
			return render.Print(r, slicex.PickRandom(list, count))
		}
	case typex.KindBoolean:
		if list, ok := scalars[bool](items); ok {
			return render.Print(r, slicex.PickRandom(list, count))
		}
	}
	return mixedList("pickRandom")
}

func scalars[T slicex.Scalar](items []any) ([]T, bool) {
	out := make([]T, len(items))
	for i, item := range items {
		v, ok := item.(T)
		if !ok {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func numbers(items []any) ([]float64, bool) {
	out := make([]float64, len(items))
	for i, item := range items {
		if !typex.IsNumber(item) {
			return nil, false
		}
		out[i] = reflect.ValueOf(item).Convert(reflect.TypeOf(float64(0))).Float()
	}
	return out, true
}

func mixedList(operation string) error {
	return mdwerrors.InvalidInput(mdwerrors.GroupCLI, operation, nil,
		"Liste muss einheitlich aus Texten, Zahlen oder Wahrheitswerten bestehen")
}
