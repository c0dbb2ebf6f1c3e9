package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "github.com/akhilbojedla/pitmutation-plugin/internal/model"
)

const recordFileName = "record.yaml"

// listWorkers bounds the concurrent snapshot reads during a full history scan.
const listWorkers = 4

// buildSnapshot is the on-disk form of one recorded build.
type buildSnapshot struct {
	Build    string                  `yaml:"build"`
	Previous string                  `yaml:"previous,omitempty"`
	Stats    m.MutationStats         `yaml:"stats"`
	Targets  map[string][]m.Mutation `yaml:"targets"`
}

// HistoryStore persists one report snapshot per build under the history
// root, at <root>/<ref>/record.yaml. It implements ReportProvider.
type HistoryStore struct {
	root string
}

var _ ReportProvider = (*HistoryStore)(nil)

// NewHistoryStore constructs a store rooted at dir. The directory is
// created lazily on the first Save.
func NewHistoryStore(dir string) *HistoryStore {
	return &HistoryStore{root: dir}
}

// Root returns the history root directory.
func (s *HistoryStore) Root() string {
	return s.root
}

// Save writes the record's report snapshot, overwriting any snapshot
// already stored for the same build.
func (s *HistoryStore) Save(record m.BuildRecord) error {
	if record.Ref == "" {
		return fmt.Errorf("build ref must not be empty")
	}

	if record.Report == nil {
		return fmt.Errorf("build %s: record has no report", record.Ref)
	}

	snapshot := buildSnapshot{
		Build:    string(record.Ref),
		Previous: string(record.Previous),
		Stats:    record.Report.Stats(),
		Targets:  make(map[string][]m.Mutation),
	}
	for _, class := range record.Report.TargetClasses() {
		snapshot.Targets[class] = record.Report.MutationsFor(class)
	}

	data, err := yaml.Marshal(&snapshot)
	if err != nil {
		return fmt.Errorf("build %s: encode snapshot: %w", record.Ref, err)
	}

	dir := filepath.Join(s.root, string(record.Ref))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("build %s: create record dir: %w", record.Ref, err)
	}

	path := filepath.Join(dir, recordFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("build %s: write snapshot: %w", record.Ref, err)
	}

	slog.Debug("saved build record", "build", record.Ref, "path", path)

	return nil
}

// GetReport loads the report recorded for ref. The recorded stats are
// cross-checked against stats recomputed from the mutation lists; any
// mismatch surfaces as model.ErrReportIntegrity.
func (s *HistoryStore) GetReport(ref m.BuildRef) (*m.Report, error) {
	snapshot, err := s.load(ref)
	if err != nil {
		return nil, err
	}

	if err := snapshot.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("build %s: %w", ref, err)
	}

	report := m.NewReport(snapshot.Targets)
	if recomputed := report.Stats(); recomputed != snapshot.Stats {
		slog.Error("recorded stats do not match mutation lists",
			"build", ref,
			"recorded_total", snapshot.Stats.Total,
			"recorded_killed", snapshot.Stats.Killed,
			"actual_total", recomputed.Total,
			"actual_killed", recomputed.Killed,
		)

		return nil, fmt.Errorf("build %s: recorded %d/%d but found %d/%d: %w",
			ref, snapshot.Stats.Killed, snapshot.Stats.Total,
			recomputed.Killed, recomputed.Total, m.ErrReportIntegrity)
	}

	return report, nil
}

// GetPredecessor returns the reference recorded as the build's predecessor.
// The boolean is false for the first build in the history.
func (s *HistoryStore) GetPredecessor(ref m.BuildRef) (m.BuildRef, bool, error) {
	snapshot, err := s.load(ref)
	if err != nil {
		return "", false, err
	}

	if snapshot.Previous == "" {
		return "", false, nil
	}

	return m.BuildRef(snapshot.Previous), true, nil
}

// List loads every recorded build, sorted by reference. Snapshots are read
// concurrently with a bounded worker group. A missing history root yields
// an empty list, not an error.
func (s *HistoryStore) List() ([]m.BuildRecord, error) {
	entries, err := os.ReadDir(s.root)
	if os.IsNotExist(err) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read history root %s: %w", s.root, err)
	}

	var (
		mu      sync.Mutex
		records []m.BuildRecord
	)

	var group errgroup.Group
	group.SetLimit(listWorkers)

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		ref := m.BuildRef(entry.Name())

		group.Go(func() error {
			snapshot, err := s.load(ref)
			if err != nil {
				return err
			}

			report, err := s.GetReport(ref)
			if err != nil {
				return err
			}

			mu.Lock()
			records = append(records, m.BuildRecord{
				Ref:      ref,
				Report:   report,
				Previous: m.BuildRef(snapshot.Previous),
			})
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Ref < records[j].Ref
	})

	return records, nil
}

func (s *HistoryStore) load(ref m.BuildRef) (buildSnapshot, error) {
	path := filepath.Join(s.root, string(ref), recordFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("failed to read build record", "build", ref, "path", path, "error", err)
		return buildSnapshot{}, fmt.Errorf("build %s: read snapshot: %w", ref, err)
	}

	var snapshot buildSnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return buildSnapshot{}, fmt.Errorf("build %s: decode snapshot: %w", ref, err)
	}

	return snapshot, nil
}

// ReadTargets parses a per-class mutation list file, the input format
// accepted by the record command.
func ReadTargets(path string) (map[string][]m.Mutation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	var targets map[string][]m.Mutation
	if err := yaml.Unmarshal(data, &targets); err != nil {
		return nil, fmt.Errorf("decode targets file %s: %w", path, err)
	}

	return targets, nil
}
