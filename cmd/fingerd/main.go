// fingerd answers a single finger query per invocation. An external
// activator (inetd style) owns the socket and spawns one process per
// connection with the peer on stdin/stdout; fingerd reads one request line,
// writes one response, logs the raw query to stderr, and exits 0.
package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"fingerd/internal/config"
	"fingerd/internal/domain"
	"fingerd/internal/protocol"
	"fingerd/internal/repository"
	"fingerd/internal/repository/fsresource"
	"fingerd/internal/repository/sqlite"
	"fingerd/internal/service"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	profile := domain.Profile{
		Name:        cfg.Name,
		ContactPath: cfg.Contact,
		ProjectPath: cfg.Project,
		PlanPath:    cfg.Plan,
		InfoLabels:  cfg.InfoLabels,
	}

	ctx := context.Background()

	var audit repository.QueryLogRepository
	if cfg.AuditDB != "" {
		db, err := sqlite.Open(cfg.AuditDB)
		if err != nil {
			logger.Fatalf("open audit db: %v", err)
		}
		defer db.Close()

		repo := sqlite.NewQueryLogRepository(db)
		if err := repo.Init(ctx); err != nil {
			logger.Fatalf("init audit db: %v", err)
		}
		audit = repo
	}

	svc := service.NewFingerService(profile, fsresource.NewResourceRepository(), audit, logger)

	rawLine := readQueryLine(os.Stdin)
	result := svc.Handle(ctx, rawLine)

	if _, err := io.WriteString(os.Stdout, result.Response); err != nil {
		logger.Fatalf("write response: %v", err)
	}

	logger.WithFields(logrus.Fields{
		"request_id":     result.RequestID,
		"classification": result.Classification,
	}).Infof("received query %q", rawLine)
}

// readQueryLine reads at most one line from r, capped at MaxQueryBytes
// including the terminator. Anything past the cap or after EOF is not the
// core's problem: the returned text is handed to classification as-is.
func readQueryLine(r io.Reader) string {
	br := bufio.NewReader(io.LimitReader(r, protocol.MaxQueryBytes))
	line, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return ""
	}
	return line
}
