package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development" validate:"oneof=development production"`
	Server      struct {
		Host            string   `env:"HOST" envDefault:"127.0.0.1"`
		Port            string   `env:"PORT" envDefault:"8050" validate:"required,numeric"`
		ReadTimeout     int      `env:"READ_TIMEOUT" envDefault:"10" validate:"min=1"`
		WriteTimeout    int      `env:"WRITE_TIMEOUT" envDefault:"15" validate:"min=1"`
		IdleTimeout     int      `env:"IDLE_TIMEOUT" envDefault:"60" validate:"min=1"`
		ShutdownTimeout int      `env:"SHUTDOWN_TIMEOUT" envDefault:"10" validate:"min=1"`
		CORSOrigins     []string `env:"CORS_ORIGINS" envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	} `envPrefix:"SERVER_"`
	Dataset struct {
		Source        string `env:"SOURCE" envDefault:"csv" validate:"oneof=csv postgres"`
		Path          string `env:"PATH" envDefault:"HRDataset_v14.csv"`
		ReferenceYear int    `env:"REFERENCE_YEAR" envDefault:"2022" validate:"min=1900,max=2100"`
	} `envPrefix:"DATASET_"`
	Database struct {
		DSN            string `env:"DSN"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10" validate:"min=1"`
		QueryTimeout   int    `env:"QUERY_TIMEOUT" envDefault:"10" validate:"min=1"`
		TxTimeout      int    `env:"TRANSACTION_TIMEOUT" envDefault:"20" validate:"min=1"`
		MaxOpenConns   int    `env:"MAX_OPEN_CONNS" envDefault:"10" validate:"min=1"`
		MaxIdleConns   int    `env:"MAX_IDLE_CONNS" envDefault:"10" validate:"min=0"`
		MaxIdleTime    int    `env:"MAX_IDLE_TIME" envDefault:"60" validate:"min=0"`
	} `envPrefix:"DATABASE_"`
	Redis struct {
		Enabled        bool   `env:"ENABLED" envDefault:"false"`
		Host           string `env:"HOST" envDefault:"localhost"`
		Port           int    `env:"PORT" envDefault:"6379" validate:"min=1,max=65535"`
		Password       string `env:"PASSWORD"`
		DB             int    `env:"DB" envDefault:"0" validate:"min=0"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10" validate:"min=1"`
		FigureTTL      int    `env:"FIGURE_TTL" envDefault:"300" validate:"min=1"` // 秒
	} `envPrefix:"REDIS_"`
}

var (
	ErrDatasetPathRequired = errors.New("DATASET_PATH 不能为空")
	ErrDatabaseDSNRequired = errors.New("使用 postgres 数据源时必须设置 DATABASE_DSN")
)

func LoadConfig() (*Config, error) {
	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfigWithSource 与 LoadConfig 相同，但数据源由调用方指定，不读取 DATASET_SOURCE
func LoadConfigWithSource(source string) (*Config, error) {
	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	cfg.Dataset.Source = source
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if ok && len(validationErrors) > 0 {
			return validationErrors[0]
		}
		return err
	}

	switch c.Dataset.Source {
	case SourceCSV:
		if c.Dataset.Path == "" {
			return ErrDatasetPathRequired
		}
	case SourcePostgres:
		if c.Database.DSN == "" {
			return ErrDatabaseDSNRequired
		}
	}

	return nil
}
