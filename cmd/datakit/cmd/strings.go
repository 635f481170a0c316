// ============================================================================
// datakit - Werkzeuge für Datenaufbereitung
// ============================================================================
//
// Package:     cmd
// Description: String transformation commands
// Author:      Mike Stoffels
// Created:     2026-09-23
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/datakit/core/result"
	"github.com/msto63/datakit/internal/cli/render"
	"github.com/msto63/datakit/utils/stringx"
)

// textOp is a string command without extra flags
type textOp struct {
	use   string
	short string
	apply func(text string) result.Result[string]
}

var textOps = []textOp{
	{"normalize", "Ersetzt Sonderzeichen und Leerraum durch einzelne Leerzeichen", func(s string) result.Result[string] { return stringx.Normalize(s) }},
	{"upper", "Wandelt in Großbuchstaben", func(s string) result.Result[string] { return stringx.ToUpper(s) }},
	{"lower", "Wandelt in Kleinbuchstaben", func(s string) result.Result[string] { return stringx.ToLower(s) }},
	{"slug", "Erzeugt einen URL-Slug", func(s string) result.Result[string] { return stringx.ToSlug(s) }},
	{"title", "Schreibt jedes Wort groß", func(s string) result.Result[string] { return stringx.ToTitle(s) }},
	{"snake", "Wandelt in snake_case", func(s string) result.Result[string] { return stringx.ToSnakeCase(s) }},
	{"kebab", "Wandelt in kebab-case", func(s string) result.Result[string] { return stringx.ToKebabCase(s) }},
	{"camel", "Wandelt in camelCase", func(s string) result.Result[string] { return stringx.ToCamelCase(s) }},
	{"pascal", "Wandelt in PascalCase", func(s string) result.Result[string] { return stringx.ToPascalCase(s) }},
	{"camel-to-snake", "Trennt camelCase mit Unterstrichen", func(s string) result.Result[string] { return stringx.CamelToSnake(s) }},
	{"camel-to-kebab", "Trennt camelCase mit Bindestrichen", func(s string) result.Result[string] { return stringx.CamelToKebab(s) }},
	{"comma-list", "Normalisiert eine kommagetrennte Liste", func(s string) result.Result[string] { return stringx.ToCommaList(s) }},
}

func newStringsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "strings",
		Aliases: []string{"str", "s"},
		Short:   "Texte umformen",
		Long: `Formt Texte um. Der Text wird aus den Argumenten gelesen,
ohne Argumente von der Standardeingabe.

Beispiel:
  datakit strings slug "Hello World"      # hello-world
  datakit strings camel-to-snake fooBar   # foo_bar`,
	}

	for _, op := range textOps {
		cmd.AddCommand(newTextOpCmd(a, op))
	}
	cmd.AddCommand(
		newCapitalizeCmd(a),
		newSplitListCmd(a),
		newBetweenCmd(a),
		newRemoveFirstCmd(a),
	)
	return cmd
}

func newTextOpCmd(a *app, op textOp) *cobra.Command {
	return &cobra.Command{
		Use:   op.use + " [text...]",
		Short: op.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(a.in, args)
			if err != nil {
				return err
			}
			return render.Print(a.render, op.apply(text))
		},
	}
}

func newCapitalizeCmd(a *app) *cobra.Command {
	var words, first bool
	cmd := &cobra.Command{
		Use:   "capitalize [text...]",
		Short: "Schreibt den ersten Buchstaben groß",
		Long: `Schreibt den ersten Buchstaben groß. Mit --words wird jedes
Wort großgeschrieben. Ohne Flag gilt strings.capitalize aus der
Konfiguration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(a.in, args)
			if err != nil {
				return err
			}
			mode := a.settings.CapitalizeMode()
			switch {
			case words:
				mode = stringx.CapitalizeWords
			case first:
				mode = stringx.CapitalizeFirst
			}
			return render.Print(a.render, stringx.Capitalize(text, mode))
		},
	}
	cmd.Flags().BoolVar(&words, "words", false, "Jedes Wort großschreiben")
	cmd.Flags().BoolVar(&first, "first", false, "Nur den ersten Buchstaben großschreiben")
	cmd.MarkFlagsMutuallyExclusive("words", "first")
	return cmd
}

func newSplitListCmd(a *app) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "split-list [text...]",
		Short: "Zerlegt eine kommagetrennte Liste",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(a.in, args)
			if err != nil {
				return err
			}
			if check {
				return render.Print(a.render, stringx.IsCommaList(text))
			}
			return render.Print(a.render, stringx.CommaListToSlice(text))
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Nur prüfen, ob eine Liste vorliegt")
	return cmd
}

func newBetweenCmd(a *app) *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "between [text...]",
		Short: "Liefert den Text zwischen zwei Markierungen",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(a.in, args)
			if err != nil {
				return err
			}
			return render.Print(a.render, stringx.TextBetween(text, start, end))
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "Startmarkierung")
	cmd.Flags().StringVar(&end, "end", "", "Endmarkierung")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newRemoveFirstCmd(a *app) *cobra.Command {
	var target string
	var trim bool
	cmd := &cobra.Command{
		Use:   "remove-first [text...]",
		Short: "Entfernt das erste Vorkommen eines Teilstrings",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textInput(a.in, args)
			if err != nil {
				return err
			}
			return render.Print(a.render, stringx.RemoveFirst(text, target, trim))
		},
	}
	cmd.Flags().StringVar(&target, "target", "", "Zu entfernender Teilstring")
	cmd.Flags().BoolVar(&trim, "trim", false, "Leerraum um die Fundstelle zusammenfassen")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}
