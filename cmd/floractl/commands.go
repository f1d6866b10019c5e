package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jengzang/asir-flora/internal/database"
	"github.com/jengzang/asir-flora/internal/dataset"
	"github.com/jengzang/asir-flora/internal/models"
	"github.com/jengzang/asir-flora/internal/repository"
	"github.com/jengzang/asir-flora/internal/service"
	"github.com/jengzang/asir-flora/internal/tooltip"
)

type rootOptions struct {
	dbPath string
	sheet  string
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:          "floractl",
		Short:        "Validate, import and inspect species spreadsheets",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&o.dbPath, "db", "./data/flora.db", "SQLite database path")
	root.PersistentFlags().StringVar(&o.sheet, "sheet", "", "xlsx worksheet (default: first sheet)")

	root.AddCommand(
		newValidateCmd(o),
		newImportCmd(o),
		newListCmd(o),
		newShowCmd(o),
		newHoverCmd(o),
	)
	return root
}

func newValidateCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a spreadsheet has every required column and numeric cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := dataset.Load(args[0], dataset.LoadOptions{Sheet: o.sheet})
			if err != nil {
				return err
			}
			p := dataset.NewProvider(records, args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records, plant types %v\n", args[0], p.Len(), p.PlantTypes())
			return nil
		},
	}
}

func newImportCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Load a spreadsheet into the SQLite database, replacing its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(database.Config{Path: o.dbPath})
			if err != nil {
				return err
			}
			defer db.Close()

			svc := service.NewImportService(db)
			run, err := svc.Import(cmd.Context(), args[0], dataset.LoadOptions{Sheet: o.sheet})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records (run %s)\n", run.RecordCount, run.ID)
			return nil
		},
	}
}

func newListCmd(o *rootOptions) *cobra.Command {
	var filter models.RecordFilter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records stored in the SQLite database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(database.Config{Path: o.dbPath})
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := repository.NewRecordRepository(db).List(cmd.Context(), filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSOIL\tCLIMATE\tELEVATION\tSIGNIFICANCE\tCOUNT\tTYPE\tSPECIES\tPHOTO")
			for _, r := range records {
				fmt.Fprintf(w, "%d\t%g\t%g\t%g\t%g\t%g\t%s\t%s\t%s\n",
					r.ID, r.SoilAxis, r.ClimateAxis, r.ElevationAxis,
					r.Significance, r.SignificanceCount, r.PlantType, r.Species, r.PhotoRoute)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&filter.PlantType, "plant-type", "", "only this plant type")
	cmd.Flags().StringVar(&filter.Species, "species", "", "species substring")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "max records (0 for all)")
	return cmd
}

func newShowCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one stored record and its tooltip state as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid record id %q: %w", args[0], err)
			}

			db, err := database.Open(database.Config{Path: o.dbPath})
			if err != nil {
				return err
			}
			defer db.Close()

			rec, err := repository.NewRecordRepository(db).GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(struct {
				Record  *models.Record      `json:"record"`
				Tooltip models.TooltipState `json:"tooltip"`
			}{rec, tooltip.Project(tooltip.EventFor(*rec))})
		},
	}
}

func newHoverCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hover <file> <soil> <climate> <elevation>",
		Short: "Print the tooltip state for the record nearest to a plot position",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			var coords [3]float64
			for i, raw := range args[1:] {
				v, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q: %w", raw, err)
				}
				coords[i] = v
			}

			records, err := dataset.Load(args[0], dataset.LoadOptions{Sheet: o.sheet})
			if err != nil {
				return err
			}
			p := dataset.NewProvider(records, args[0])

			var ev *models.HoverEvent
			if rec, ok := p.Nearest(coords[0], coords[1], coords[2]); ok {
				ev = tooltip.EventFor(rec)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(tooltip.Project(ev))
		},
	}
}
