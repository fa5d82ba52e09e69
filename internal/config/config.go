package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DateLayout é o formato de data usado nos arquivos e na configuração
const DateLayout = time.DateOnly

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Extraction     Extraction     `mapstructure:",squash"`
	Presentation   Presentation   `mapstructure:",squash"`
	ExtractionSync ExtractionSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Extraction struct {
	DataDir       string   `mapstructure:"data_dir"`
	InputFiles    []string `mapstructure:"input_files"`
	OutputFile    string   `mapstructure:"output_file"`
	TargetProduct string   `mapstructure:"target_product"`
}

type Presentation struct {
	CutoffDateRaw string    `mapstructure:"cutoff_date"`
	CutoffDate    time.Time `mapstructure:"-"`
}

type ExtractionSync struct {
	CronSchedule string `mapstructure:"extraction_sync_cron"`
	Enabled      bool   `mapstructure:"extraction_sync_enabled"`
}

// InputPaths retorna os caminhos completos dos arquivos de entrada, na ordem configurada
func (e Extraction) InputPaths() []string {
	paths := make([]string, 0, len(e.InputFiles))
	for _, name := range e.InputFiles {
		paths = append(paths, filepath.Join(e.DataDir, name))
	}
	return paths
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", "8050")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8050")

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("INPUT_FILES", "daily_sales_data_0.csv,daily_sales_data_1.csv,daily_sales_data_2.csv")
	viper.SetDefault("OUTPUT_FILE", "pink_morsel_sales.csv")
	viper.SetDefault("TARGET_PRODUCT", "pink morsel")

	viper.SetDefault("CUTOFF_DATE", "2021-01-15") // Data do aumento de preço

	viper.SetDefault("EXTRACTION_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("EXTRACTION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando apenas variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize valida os campos derivados depois do Unmarshal
func (c *Config) normalize() error {
	files := make([]string, 0, len(c.Extraction.InputFiles))
	for _, name := range c.Extraction.InputFiles {
		if name = strings.TrimSpace(name); name != "" {
			files = append(files, name)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("config: nenhum arquivo de entrada configurado (INPUT_FILES)")
	}
	c.Extraction.InputFiles = files

	cutoff, err := time.Parse(DateLayout, strings.TrimSpace(c.Presentation.CutoffDateRaw))
	if err != nil {
		return fmt.Errorf("config: CUTOFF_DATE inválida %q: %w", c.Presentation.CutoffDateRaw, err)
	}
	c.Presentation.CutoffDate = cutoff

	return nil
}

// loadEnvFile carrega o arquivo .env do diretório atual ou de diretórios acima
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado de: ", location)
			return
		}
	}
}
