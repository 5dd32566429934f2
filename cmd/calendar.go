package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BillboardCalendar/internal/config"
	calendarService "github.com/m04kA/SMC-BillboardCalendar/internal/service/calendar"
	"github.com/m04kA/SMC-BillboardCalendar/pkg/logger"
)

func newCalendarCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Управление календарем би-недель",
	}

	cmd.AddCommand(newGenerateCommand(opts))
	return cmd
}

type generateOptions struct {
	Year   int
	DryRun bool
}

func newGenerateCommand(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Генерирует би-недели на год, продолжая существующую цепочку",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Load(root.ConfigPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer log.Close()

			st, err := openStores(ctx, cfg, nil, log)
			if err != nil {
				return err
			}
			defer st.close()

			svc := calendarService.NewService(st.periods, nil, log)
			periods, err := svc.GenerateYear(ctx, opts.Year, opts.DryRun)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tID\tSTART\tEND")
			for i, p := range periods {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, p.ID, p.StartDate, p.EndDate)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if opts.DryRun {
				cmd.Printf("dry run: %d periods for %d were not stored\n", len(periods), opts.Year)
			} else {
				cmd.Printf("stored %d periods for %d\n", len(periods), opts.Year)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Year, "year", 0, "календарный год (обязательно)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "только показать периоды, без записи")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
