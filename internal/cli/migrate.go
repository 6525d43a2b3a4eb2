package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/twistin/xestion-conservatorio-rsp/pkg/database"
)

// migrateStatus migrate 子命令的输出
type migrateStatus struct {
	Action  string `json:"action"`
	Version uint   `json:"version"`
	Dirty   bool   `json:"dirty"`
	Changed bool   `json:"changed"`
}

// NewMigrateCommand 创建 migrate 命令（up / down / version）
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:       "migrate <up|down|version>",
		Short:     "Aplica o revierte las migraciones de la base de datos",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(rootOpts, args[0], steps, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "número de migraciones a revertir con down")
	return cmd
}

func runMigrate(opts *RootOptions, action string, steps int, w io.Writer) error {
	e, cleanup, err := opts.setup()
	if err != nil {
		return err
	}
	defer cleanup()

	sqlDB, err := e.db.DB()
	if err != nil {
		return err
	}
	m, err := database.NewMigrator(sqlDB)
	if err != nil {
		return err
	}

	status := migrateStatus{Action: action}
	switch action {
	case "up":
		err = m.Up()
	case "down":
		if steps <= 0 {
			return fmt.Errorf("--steps debe ser positivo")
		}
		err = m.Steps(-steps)
	}
	switch {
	case errors.Is(err, migrate.ErrNoChange):
	case err != nil:
		e.logger.Error("迁移失败", zap.String("action", action), zap.Error(err))
		return fmt.Errorf("migración %s fallida: %w", action, err)
	default:
		status.Changed = action != "version"
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	status.Version, status.Dirty = version, dirty

	e.logger.Info("迁移命令完成", zap.String("action", action), zap.Uint("version", version), zap.Bool("dirty", dirty))
	return printResult(w, opts.Format, status, func(w io.Writer) {
		fmt.Fprintf(w, "versión: %d (dirty=%v, cambios=%v)\n", status.Version, status.Dirty, status.Changed)
	})
}
