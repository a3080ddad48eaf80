// Package file reads the source list from a pipe-delimited text file.
//
// Each line describes one source:
//
//	reserved | server | name | start record | end record | database path
//
// The first field is ignored. Fields are trimmed. Blank lines and lines
// starting with '#' are skipped.
package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/evship/internal/core/domain"
	"github.com/custodia-labs/evship/internal/core/ports/driven"
)

// Ensure SourceList implements the interface.
var _ driven.SourceList = (*SourceList)(nil)

// DefaultFileName is the source list read when no path is configured.
const DefaultFileName = "collect_logs_params.txt"

// fieldCount is the number of pipe-separated fields per line.
const fieldCount = 6

// SourceList loads sources from a text file.
type SourceList struct {
	path string
}

// NewSourceList creates a source list backed by path.
// If path is empty, DefaultFileName in the working directory is used.
func NewSourceList(path string) *SourceList {
	if path == "" {
		path = DefaultFileName
	}
	return &SourceList{path: path}
}

// Load reads and parses every source in the file.
func (s *SourceList) Load(ctx context.Context) ([]domain.Source, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening source list: %w", err)
	}
	defer f.Close()

	sources, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return sources, nil
}

// Path returns the source list location.
func (s *SourceList) Path() string {
	return s.path
}

// Parse reads sources from r, one per line.
// Any malformed line fails the whole parse.
func Parse(ctx context.Context, r io.Reader) ([]domain.Source, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var sources []domain.Source //nolint:prealloc // size unknown until read
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		source, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		sources = append(sources, source)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading source list: %w", err)
	}

	return sources, nil
}

// ParseLine parses one pipe-delimited source definition.
func ParseLine(line string) (domain.Source, error) {
	fields := strings.Split(line, "|")
	if len(fields) < fieldCount {
		return domain.Source{}, fmt.Errorf("%w: expected %d fields, got %d",
			domain.ErrInvalidInput, fieldCount, len(fields))
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	start, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return domain.Source{}, fmt.Errorf("%w: start record %q is not a number", domain.ErrInvalidInput, fields[3])
	}
	end, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return domain.Source{}, fmt.Errorf("%w: end record %q is not a number", domain.ErrInvalidInput, fields[4])
	}
	if fields[5] == "" {
		return domain.Source{}, fmt.Errorf("%w: database path is empty", domain.ErrInvalidInput)
	}

	source := domain.Source{
		Server:        fields[1],
		Name:          fields[2],
		StartRecordID: start,
		EndRecordID:   end,
		Path:          fields[5],
	}
	if err := source.Validate(); err != nil {
		return domain.Source{}, err
	}
	return source, nil
}
