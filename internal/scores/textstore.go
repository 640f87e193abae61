package scores

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// TextStore keeps records in a plain text file, one "name,score" per line.
type TextStore struct {
	path   string
	logger *log.Logger
}

// NewTextStore creates a store for the file at path. A leading ~ expands to
// the home directory. A nil logger discards skipped-line reports.
func NewTextStore(path string, logger *log.Logger) (*TextStore, error) {
	p, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TextStore{path: p, logger: logger}, nil
}

// Load reads every well-formed line. A missing file is an empty ledger.
// Lines that do not split into exactly two fields, or whose score is not an
// integer, are skipped.
func (s *TextStore) Load() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scores: cannot read %s: %w", s.path, err)
	}

	var records []Record
	sc := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; sc.Scan(); n++ {
		rec, ok := parseLine(sc.Text())
		if !ok {
			s.logger.Debug("skipping malformed score line", "file", s.path, "line", n)
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scores: cannot scan %s: %w", s.path, err)
	}
	return records, nil
}

// Save overwrites the file with records.
func (s *TextStore) Save(records []Record) error {
	var buf bytes.Buffer
	for _, r := range records {
		fmt.Fprintf(&buf, "%s,%d\n", r.Name, r.Score)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("scores: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("scores: cannot write %s: %w", s.path, err)
	}
	return nil
}

func parseLine(line string) (Record, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return Record{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Record{}, false
	}
	return Record{Name: parts[0], Score: score}, true
}

func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("scores: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
