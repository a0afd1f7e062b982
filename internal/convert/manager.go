package convert

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/handiism/tracker-convert/internal/config"
	"github.com/handiism/tracker-convert/internal/export"
	ioutils "github.com/handiism/tracker-convert/internal/io"
	"github.com/handiism/tracker-convert/internal/model"
)

// ErrInputNotFound is returned by Run when the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a conversion progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Summary describes a finished conversion.
type Summary struct {
	Total      int
	Collection int
	Wishlist   int

	// OutputPath is where the items were, or would have been, written.
	OutputPath string

	// Written is false for dry runs.
	Written bool
}

// Manager coordinates one conversion run.
type Manager struct {
	settings *config.Settings
	parser   *export.Parser
	logger   *zap.Logger

	onProgress func(ProgressEvent)
}

// NewManager creates a new conversion Manager.
//
// A nil logger is replaced by a no-op logger; onProgress may be nil.
func NewManager(settings *config.Settings, logger *zap.Logger, onProgress func(ProgressEvent)) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		settings:   settings,
		parser:     export.NewParser(),
		logger:     logger,
		onProgress: onProgress,
	}
}

// Run reads the export, converts it and writes the tracker file.
//
// If the input file does not exist Run reports "File not found", writes
// nothing and returns ErrInputNotFound. The output is fully encoded before
// the file is opened, so a failed run never leaves a partial output file.
func (m *Manager) Run(ctx context.Context) (*Summary, error) {
	inputPath := m.settings.InputPath
	outputPath := m.settings.OutputPath

	ok, err := ioutils.Exists(inputPath)
	if err != nil {
		return nil, fmt.Errorf("could not check input file: %w", err)
	}
	if !ok {
		m.progress(ProgressEvent{Message: fmt.Sprintf("File not found: %s", inputPath), Level: LevelError})
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
	}

	m.logger.Debug("Reading export", zap.String("input", inputPath))
	data, err := ioutils.ReadFile(ctx, inputPath)
	if err != nil {
		return nil, fmt.Errorf("could not read input file: %w", err)
	}

	records, err := m.parser.ParseRecords(data)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("Parsed export", zap.Int("records", len(records)))

	result := Transform(records)
	m.reportFallbacks(result.Fallbacks)

	summary := &Summary{
		Total:      result.Total(),
		Collection: result.Collection,
		Wishlist:   result.Wishlist,
		OutputPath: outputPath,
	}

	encoded, err := ioutils.EncodeJSON(result.Items, m.settings.Indent, m.settings.ASCIIOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to encode items: %w", err)
	}

	if m.settings.DryRun {
		m.progress(ProgressEvent{Message: fmt.Sprintf("Dry run: converted %d items, nothing written to %s", summary.Total, outputPath), Level: LevelSuccess})
	} else {
		if err := ioutils.WriteFile(ctx, outputPath, encoded); err != nil {
			return nil, fmt.Errorf("could not write output file: %w", err)
		}
		summary.Written = true
		m.logger.Debug("Wrote tracker file", zap.String("output", outputPath), zap.Int("bytes", len(encoded)))
		m.progress(ProgressEvent{Message: fmt.Sprintf("Successfully converted %d items to %s", summary.Total, outputPath), Level: LevelSuccess})
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("  - Collection: %d", summary.Collection), Level: LevelInfo})
	m.progress(ProgressEvent{Message: fmt.Sprintf("  - Wishlist: %d", summary.Wishlist), Level: LevelInfo})

	return summary, nil
}

func (m *Manager) reportFallbacks(fallbacks []Fallback) {
	for _, fb := range fallbacks {
		var msg string
		switch fb.Kind {
		case FallbackAddedAt:
			msg = fmt.Sprintf("Item %d: id missing or not a number, addedAt set to 0", fb.Index)
		case FallbackFormat:
			msg = fmt.Sprintf("Item %d: no format set, using %s", fb.Index, model.FormatDigital)
		default:
			continue
		}
		m.logger.Debug("Applied fallback", zap.Int("index", fb.Index), zap.String("detail", msg))
		m.progress(ProgressEvent{Message: msg, Level: LevelVerbose})
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
