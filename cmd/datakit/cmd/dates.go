package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/datakit/internal/cli/render"
	"github.com/msto63/datakit/utils/timex"
)

// now is replaced in tests
var now = time.Now

func newDatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dates",
		Aliases: []string{"date", "d"},
		Short:   "Datumswerte formatieren",
		Long: `Formatiert Datumswerte. Eingaben werden tolerant gelesen,
z.B. "2024-03-15", "15.03.2024", "Mar 15, 2024" oder RFC 3339.`,
	}
	cmd.AddCommand(
		newFormatCmd(a),
		&cobra.Command{
			Use:   "iso <datum>",
			Short: "Formatiert ein Datum als JJJJ-MM-TT",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				date, err := timex.ParseLoose(args[0])
				if err != nil {
					return err
				}
				return render.Print(a.render, timex.FormatDateISO(date))
			},
		},
		&cobra.Command{
			Use:   "day <datum>",
			Short: "Liefert den Tag im Monat",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return render.Print(a.render, timex.DayOfMonth(args[0]))
			},
		},
		&cobra.Command{
			Use:   "month <datum>",
			Short: "Liefert den abgekürzten Monatsnamen",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return render.Print(a.render, timex.MonthShort(args[0]))
			},
		},
		&cobra.Command{
			Use:   "pad <zahl>",
			Short: "Füllt eine Zahl auf zwei Stellen auf",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return render.Print(a.render, timex.PadTo2Digits(parseValue(args[0])))
			},
		},
	)
	return cmd
}

func newFormatCmd(a *app) *cobra.Command {
	var iso bool
	cmd := &cobra.Command{
		Use:   "format [datum]",
		Short: "Formatiert ein Datum als TT/MM/JJJJ",
		Long: `Formatiert ein Datum als TT/MM/JJJJ, mit --iso als JJJJ-MM-TT.
Ohne Datum wird der heutige Tag verwendet.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := now()
			if len(args) == 1 {
				parsed, err := timex.ParseLoose(args[0])
				if err != nil {
					return err
				}
				date = parsed
			}
			if iso {
				return render.Print(a.render, timex.FormatDateISO(date))
			}
			return render.Print(a.render, timex.FormatDate(date))
		},
	}
	cmd.Flags().BoolVar(&iso, "iso", false, "ISO-8601 Format")
	return cmd
}
