// cmd/taframe runs one batch indicator job: load a bar series from CSV
// or the SQLite bar store, compute the configured indicator columns,
// append them to the frame, and write the result as CSV. It can also
// import a bar CSV into the store for later jobs.
//
// Usage:
//
//	go run ./cmd/taframe --config=job.yaml
//	go run ./cmd/taframe --config=job.yaml --out=- > enriched.csv
//	go run ./cmd/taframe --import=bars.csv --db=data/bars.db --symbol=AAPL
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"taframe/config"
	"taframe/internal/frame"
	"taframe/internal/job"
	"taframe/internal/logger"
	"taframe/internal/model"
	sqlitestore "taframe/internal/store/sqlite"
)

func main() {
	cfgPath := flag.String("config", "job.yaml", "Path to the YAML job config")
	inCSV := flag.String("in", "", "Bar CSV path (overrides source.csv)")
	dbPath := flag.String("db", "", "SQLite bar store path (overrides source.db)")
	symbol := flag.String("symbol", "", "Symbol to read from the bar store (overrides source.symbol)")
	outPath := flag.String("out", "", "Output CSV path, or - for stdout (overrides output.csv)")
	importCSV := flag.String("import", "", "Bar CSV to import into the SQLite store (with --db and --symbol), then exit")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	log := logger.Init("taframe", logger.ParseLevel(*logLevel))

	if *importCSV != "" {
		importBars(log, *importCSV, *dbPath, *symbol)
		return
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Error("config load failed", slog.String("path", *cfgPath), slog.Any("err", err))
		os.Exit(1)
	}
	applyFlagOverrides(cfg, *inCSV, *dbPath, *symbol, *outPath)

	bars, err := loadBars(cfg)
	if err != nil {
		log.Error("bar load failed", slog.Any("err", err))
		os.Exit(1)
	}
	if err := frame.Validate(bars); err != nil {
		log.Error("bar series invalid", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bars loaded", slog.Int("count", len(bars)))

	f, err := job.Run(cfg, bars)
	if err != nil {
		log.Error("indicator job failed", slog.Any("err", err))
		os.Exit(1)
	}
	if cfg.Output.Clean {
		f = f.Clean()
	}

	if cfg.Output.CSV == "-" {
		err = f.WriteCSV(os.Stdout)
	} else {
		err = f.WriteCSVFile(cfg.Output.CSV)
	}
	if err != nil {
		log.Error("csv write failed", slog.Any("err", err))
		os.Exit(1)
	}

	log.Info("job complete",
		slog.Int("rows", f.Len()),
		slog.Int("columns", len(f.Columns())),
		slog.String("out", cfg.Output.CSV),
	)
}

// importBars loads a bar CSV into the SQLite store under one symbol.
func importBars(log *slog.Logger, csvPath, dbPath, symbol string) {
	if dbPath == "" || symbol == "" {
		log.Error("--import requires --db and --symbol")
		os.Exit(1)
	}

	bars, err := frame.ReadCSVFile(csvPath)
	if err != nil {
		log.Error("bar load failed", slog.Any("err", err))
		os.Exit(1)
	}
	if err := frame.Validate(bars); err != nil {
		log.Error("bar series invalid", slog.Any("err", err))
		os.Exit(1)
	}

	writer, err := sqlitestore.NewWriter(sqlitestore.WriterConfig{DBPath: dbPath})
	if err != nil {
		log.Error("store open failed", slog.Any("err", err))
		os.Exit(1)
	}
	defer writer.Close()

	if err := writer.WriteBars(symbol, bars); err != nil {
		log.Error("store write failed", slog.Any("err", err))
		os.Exit(1)
	}

	log.Info("import complete",
		slog.Int("bars", len(bars)),
		slog.String("symbol", symbol),
		slog.String("db", dbPath),
	)
}

func applyFlagOverrides(cfg *config.Config, inCSV, dbPath, symbol, outPath string) {
	if inCSV != "" {
		cfg.Source.CSV = inCSV
	}
	if dbPath != "" {
		cfg.Source.DB = dbPath
		if inCSV == "" {
			cfg.Source.CSV = ""
		}
	}
	if symbol != "" {
		cfg.Source.Symbol = symbol
	}
	if outPath != "" {
		cfg.Output.CSV = outPath
	}
}

func loadBars(cfg *config.Config) (model.Series, error) {
	if cfg.Source.CSV != "" {
		return frame.ReadCSVFile(cfg.Source.CSV)
	}

	reader, err := sqlitestore.NewReader(cfg.Source.DB)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return reader.ReadBars(cfg.Source.Symbol, cfg.Source.After)
}
