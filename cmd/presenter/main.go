package main

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-visualizer/infrastructure/charting"
	"github.com/vfg2006/sales-visualizer/infrastructure/csvfile"
	"github.com/vfg2006/sales-visualizer/internal/api"
	"github.com/vfg2006/sales-visualizer/internal/config"
	"github.com/vfg2006/sales-visualizer/internal/usecases/presenting"
)

func main() {
	configureLogger()

	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "presenter",
		Short:         "Serve o dashboard de vendas antes e depois do aumento de preço",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String("host", "", "endereço de escuta")
	flags.String("port", "", "porta de escuta")
	flags.String("output-file", "", "dataset combinado gerado pelo extractor")
	flags.String("cutoff-date", "", "data do aumento de preço (YYYY-MM-DD)")

	for key, flag := range map[string]string{
		"HOST":        "host",
		"PORT":        "port",
		"OUTPUT_FILE": "output-file",
		"CUTOFF_DATE": "cutoff-date",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			logrus.WithError(err).Fatalf("Erro ao associar flag --%s", flag)
		}
	}

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	dataset, err := presenting.NewService(csvfile.NewRepository(), cfg).LoadDataset()
	if err != nil {
		return err
	}

	server, err := api.New(cfg, dataset, charting.NewRenderer())
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
