package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/twistin/xestion-conservatorio-rsp/internal/repository"
	"github.com/twistin/xestion-conservatorio-rsp/internal/service"
)

// NewSeedInstrumentsCommand 创建 seed-instruments 命令：写入默认乐器目录（已存在的跳过）
func NewSeedInstrumentsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-instruments",
		Short: "Crea el catálogo de instrumentos por defecto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := rootOpts.setup()
			if err != nil {
				return err
			}
			defer cleanup()

			svc := service.NewMaintenanceService(repository.NewRepository(e.db), e.logger)
			report, err := svc.SeedInstruments(cmdContext(cmd))
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), rootOpts.Format, report, func(w io.Writer) {
				fmt.Fprintf(w, "creados: %d, existentes: %d\n", len(report.Created), len(report.Existing))
				for _, name := range report.Created {
					fmt.Fprintf(w, "  + %s\n", name)
				}
			})
		},
	}
}

// NewRepairInstrumentsCommand 创建 repair-instruments 命令：将历史 instr-N 引用改写为真实乐器 ID
func NewRepairInstrumentsCommand(rootOpts *RootOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "repair-instruments",
		Short: "Corrige las referencias antiguas instr-N de los alumnos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, cleanup, err := rootOpts.setup()
			if err != nil {
				return err
			}
			defer cleanup()

			svc := service.NewMaintenanceService(repository.NewRepository(e.db), e.logger)
			report, err := svc.RepairInstrumentRefs(cmdContext(cmd), dryRun)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), rootOpts.Format, report, func(w io.Writer) {
				verb := "actualizados"
				if report.DryRun {
					verb = "a actualizar (simulación)"
				}
				fmt.Fprintf(w, "revisados: %d, %s: %d, omitidos: %d\n", report.Scanned, verb, report.Updated, report.Skipped)
			})
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "muestra los cambios sin escribirlos")
	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
