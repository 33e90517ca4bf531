package bootstrap

import (
	"context"
	"fmt"

	"github.com/regtechlab/adgm-corporate-agent/internal/config"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/analysis"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/ports"
	"github.com/regtechlab/adgm-corporate-agent/internal/core/usecase"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/catalog"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/extractor"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/extractor/docx"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/extractor/pdfx"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/extractor/plaintext"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/queue/nats"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/reportfile"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/repository/postgres"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/resilience"
	"github.com/regtechlab/adgm-corporate-agent/internal/infrastructure/storage/localfs"
)

type App struct {
	Config  config.Config
	Catalog *analysis.Catalog

	Queue       ports.MessageQueue
	Repo        ports.DocumentRepository
	Validations ports.ValidationRepository

	IngestUC  ports.DocumentIngestor
	ProcessUC ports.DocumentProcessor
	ReportUC  ports.ReportService
	AskUC     ports.KnowledgeService

	closeFn func()
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	ruleCatalog, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load rule catalog: %w", err)
	}

	db, err := postgres.OpenDB(cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewDocumentRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	validations := postgres.NewValidationRepository(db)

	storage, err := localfs.New(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init object storage: %w", err)
	}

	executor := resilience.NewExecutor(resilience.DefaultConfig())
	queue, err := nats.NewWithOptions(cfg.NATSURL, cfg.NATSSubject, nats.Options{Executor: executor})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}

	classifier := analysis.NewClassifier(ruleCatalog)
	scanner, err := analysis.NewScanner(ruleCatalog)
	if err != nil {
		return nil, fmt.Errorf("compile red-flag rules: %w", err)
	}
	evaluator := analysis.NewEvaluator(ruleCatalog)

	docExtractor := extractor.NewDispatcher(storage, map[string]extractor.Format{
		".docx": docx.New(),
		".pdf":  pdfx.New(),
		".txt":  plaintext.New(),
		".md":   plaintext.New(),
	})

	reportWriter, err := reportfile.New(cfg.ReportDir, ruleCatalog)
	if err != nil {
		return nil, fmt.Errorf("init report writer: %w", err)
	}

	ingestUC := usecase.NewIngestDocumentUseCase(repo, storage, queue)
	processUC := usecase.NewProcessDocumentUseCase(repo, validations, docExtractor, classifier, scanner)
	reportUC := usecase.NewReportUseCase(repo, validations, evaluator, reportWriter)
	askUC := usecase.NewAskUseCase(ruleCatalog.Knowledge)

	return &App{
		Config:      cfg,
		Catalog:     ruleCatalog,
		Queue:       queue,
		Repo:        repo,
		Validations: validations,

		IngestUC:  ingestUC,
		ProcessUC: processUC,
		ReportUC:  reportUC,
		AskUC:     askUC,

		closeFn: func() {
			queue.Close()
			_ = db.Close()
		},
	}, nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
