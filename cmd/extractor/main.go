package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/sales-visualizer/infrastructure/csvfile"
	"github.com/vfg2006/sales-visualizer/internal/config"
	"github.com/vfg2006/sales-visualizer/internal/scheduler"
	"github.com/vfg2006/sales-visualizer/internal/usecases/extracting"
)

func main() {
	configureLogger()

	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "extractor",
		Short:         "Filtra as vendas do produto alvo e grava o dataset combinado",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String("data-dir", "", "diretório dos arquivos de vendas diárias")
	flags.StringSlice("input-files", nil, "arquivos de entrada, na ordem de processamento")
	flags.String("output-file", "", "caminho do dataset combinado")
	flags.String("target-product", "", "produto mantido pelo filtro")
	flags.Bool("schedule", false, "mantém o processo ativo e reexecuta conforme EXTRACTION_SYNC_CRON")

	bindFlag(cmd, "DATA_DIR", "data-dir")
	bindFlag(cmd, "INPUT_FILES", "input-files")
	bindFlag(cmd, "OUTPUT_FILE", "output-file")
	bindFlag(cmd, "TARGET_PRODUCT", "target-product")
	bindFlag(cmd, "EXTRACTION_SYNC_ENABLED", "schedule")

	return cmd
}

func bindFlag(cmd *cobra.Command, key, flag string) {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		logrus.WithError(err).Fatalf("Erro ao associar flag --%s", flag)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	setLogLevel(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	repo := csvfile.NewRepository()
	service := extracting.NewService(repo, repo, cfg)

	if !cfg.ExtractionSync.Enabled {
		result, err := service.Run(ctx)
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), result)
		return nil
	}

	syncService := scheduler.NewExtractionSyncService(service, cfg)

	result, err := syncService.RunNow(ctx)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), result)

	if err := syncService.Start(ctx); err != nil {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	waitSchedule(ctx, syncService, signals)
	return nil
}

// waitSchedule mantém o agendador ativo até SIGINT/SIGTERM; SIGHUP dispara uma extração manual
func waitSchedule(ctx context.Context, syncService *scheduler.ExtractionSyncService, signals <-chan os.Signal) {
	for {
		select {
		case sig := <-signals:
			if sig == syscall.SIGHUP {
				syncService.TriggerManualSync(ctx)
				continue
			}
			logrus.Info("Sinal de interrupção recebido")
		case <-ctx.Done():
		}

		syncService.Stop()
		logrus.WithFields(logrus.Fields(syncService.GetStatus())).Info("Agendador de extração encerrado")
		return
	}
}

// printResult escreve as duas linhas informativas da execução
func printResult(out io.Writer, result *extracting.Result) {
	fmt.Fprintf(out, "Processed data saved to %s\n", color.CyanString(result.OutputPath))
	fmt.Fprintf(out, "Total rows: %s\n", color.GreenString("%d", result.Rows))
}

func setLogLevel(level string) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Debugf("Nível de log configurado para: %s", logLevel)
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
