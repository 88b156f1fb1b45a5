package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"scormd/internal/archive"
	"scormd/internal/config"
	"scormd/internal/logging"
	"scormd/internal/manifest"
	"scormd/internal/store"
)

// Ingestor runs uploaded packages through extract → locate → parse → persist.
type Ingestor struct {
	store  *store.Store
	cfg    *config.Config
	logger *slog.Logger
}

// New constructs an Ingestor.
func New(st *store.Store, cfg *config.Config, logger *slog.Logger) *Ingestor {
	return &Ingestor{
		store:  st,
		cfg:    cfg,
		logger: logging.WithComponent(logger, "ingest"),
	}
}

// Ingest extracts archive bytes into a fresh course directory, resolves the
// manifest, and persists the course with its SCO list. Failures are
// all-or-nothing: nothing is persisted and the partially extracted directory
// is removed best-effort.
func (i *Ingestor) Ingest(ctx context.Context, title, filename string, data []byte) (*store.Course, error) {
	courseID := uuid.NewString()
	relBase := path.Join("courses", courseID)
	outDir := filepath.Join(i.cfg.Paths.DataDir, relBase)

	course, err := i.ingest(ctx, courseID, relBase, outDir, title, filename, data)
	if err != nil {
		_ = os.RemoveAll(outDir)
		return nil, err
	}
	return course, nil
}

func (i *Ingestor) ingest(ctx context.Context, courseID, relBase, outDir, title, filename string, data []byte) (*store.Course, error) {
	if err := archive.Extract(data, outDir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadArchive, err)
	}

	manifestPath, err := manifest.Locate(outDir)
	if err != nil {
		return nil, err
	}

	parsed, err := manifest.ParseFile(manifestPath)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(title) == "" {
		title = DeriveTitle(filename)
	}

	scos := make([]store.NewSCO, 0, len(parsed.SCOs))
	for _, sco := range parsed.SCOs {
		scos = append(scos, store.NewSCO{
			Identifier: sco.Identifier,
			LaunchHref: sco.Href,
			Parameters: sco.Parameters,
		})
	}

	course, err := i.store.CreateCourse(ctx, store.NewCourse{
		ID:            courseID,
		Title:         title,
		OrgIdentifier: parsed.OrgIdentifier,
		LaunchHref:    parsed.DefaultLaunch,
		BasePath:      relBase,
		SCOs:          scos,
	})
	if err != nil {
		return nil, fmt.Errorf("persist course: %w", err)
	}

	i.logger.Info("course ingested",
		slog.String(logging.FieldCourseID, course.ID),
		slog.String("title", course.Title),
		slog.String("launch", course.LaunchHref),
		slog.Int("scos", len(scos)))
	return course, nil
}
