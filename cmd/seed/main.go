package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/config"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/dataset"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/domain"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/repository"
	"github.com/sysu-ecnc-dev/hr-dashboard/internal/seed"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "seed",
		Short:        "Import the HR dataset into Postgres and inspect it",
		SilenceUsage: true,
	}

	root.AddCommand(newImportCommand(), newSummaryCommand())
	return root
}

func newImportCommand() *cobra.Command {
	var file string
	var truncate bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the CSV file and write every employee into the employees table",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config.SourcePostgres)
			if err != nil {
				return err
			}

			table, err := dataset.LoadFile(file, dataset.Options{ReferenceYear: cfg.Dataset.ReferenceYear})
			if err != nil {
				slog.Error("无法加载数据文件", "file", file, "error", err)
				return err
			}

			dbpool, err := repository.Open(cfg)
			if err != nil {
				slog.Error("无法连接到数据库", "error", err)
				return err
			}
			defer dbpool.Close()

			return seed.ImportTable(repository.NewRepository(cfg, dbpool), table, truncate)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "HRDataset_v14.csv", "CSV file to import")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "empty the employees table before importing")
	return cmd
}

func newSummaryCommand() *cobra.Command {
	var file string
	var fromDB bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard indicators and per-department counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			source := config.SourceCSV
			if fromDB {
				source = config.SourcePostgres
			}
			cfg, err := loadConfig(source)
			if err != nil {
				return err
			}

			var table *domain.Table
			if fromDB {
				dbpool, err := repository.Open(cfg)
				if err != nil {
					slog.Error("无法连接到数据库", "error", err)
					return err
				}
				defer dbpool.Close()

				table, err = repository.NewRepository(cfg, dbpool).LoadTable(cfg.Dataset.ReferenceYear)
				if err != nil {
					return err
				}
			} else {
				table, err = dataset.LoadFile(file, dataset.Options{ReferenceYear: cfg.Dataset.ReferenceYear})
				if err != nil {
					slog.Error("无法加载数据文件", "file", file, "error", err)
					return err
				}
			}

			seed.WriteSummary(cmd.OutOrStdout(), table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "HRDataset_v14.csv", "CSV file to summarize")
	cmd.Flags().BoolVar(&fromDB, "from-db", false, "read employees from Postgres instead of the CSV file")
	return cmd
}

// loadConfig 读取环境变量配置，数据源由命令决定
func loadConfig(source string) (*config.Config, error) {
	cfg, err := config.LoadConfigWithSource(source)
	if err != nil {
		slog.Error("无法读取配置", slog.String("error", err.Error()))
		return nil, err
	}
	return cfg, nil
}
