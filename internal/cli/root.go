// Package cli 运维命令行：数据库迁移、乐器目录初始化与历史数据修复。
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/twistin/xestion-conservatorio-rsp/config"
	"github.com/twistin/xestion-conservatorio-rsp/pkg/database"
	applogger "github.com/twistin/xestion-conservatorio-rsp/pkg/logger"
)

// ValidFormats 允许的输出格式
var ValidFormats = []string{"text", "json"}

// RootOptions 全局参数
type RootOptions struct {
	ConfigPath string
	Format     string // "text" | "json"

	// OpenDB 打开数据库连接，测试时替换为 SQLite
	OpenDB func(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error)
}

// NewRootCommand 创建 admin 根命令
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{OpenDB: openPostgres})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Herramientas de administración del conservatorio",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("formato no válido %q: use uno de %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "ruta del fichero de configuración")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "formato de salida (text|json)")

	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedInstrumentsCommand(opts))
	cmd.AddCommand(NewRepairInstrumentsCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func openPostgres(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return database.NewDB(&cfg.Database, cfg.Log.Level, logger)
}

// env 单次命令运行所需的依赖
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// setup 加载配置、日志（输出到 stderr）并连接数据库；返回的 cleanup 必须调用
func (o *RootOptions) setup() (*env, func(), error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	db, err := o.OpenDB(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}

	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = logger.Sync()
	}
	return &env{cfg: cfg, logger: logger, db: db}, cleanup, nil
}

// printResult 按格式输出结果；text 模式下由 text 回调负责排版
func printResult(w io.Writer, format string, v interface{}, text func(io.Writer)) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(w)
	return nil
}
