// Package ocr extracts raw menu text from image files using an external
// tesseract binary.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/plateworks/menugen/constants"
)

// Sentinel failures callers branch on. A menu with zero recognized
// characters is ErrNoText; it is not the same as "zero items after
// parsing", which is a valid parser result.
var (
	ErrUndecodable = errors.New("image is not decodable")
	ErrNoText      = errors.New("no text recognized in image")
)

type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"

	TessdataDir         string
	HeicConverter       string // "heif-convert" | "magick" | "sips"
	EnableTSVConfidence bool

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

type Result struct {
	Text       string
	Language   string
	Duration   time.Duration
	Warnings   []string
	Confidence float32
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract runs OCR on a menu image at path. HEIC input is converted to PNG
// first; everything else must be stdlib-decodable (PNG/JPEG).
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("ocr.extract.start", "path", path, "ext", ext)

	if !constants.IsAllowedExt(ext) {
		return Result{}, fmt.Errorf("unsupported extension %q: %w", ext, ErrUndecodable)
	}

	var warns []string
	if constants.IsHEICExt(ext) {
		out, w, cleanup, err := convertHEICtoPNG(ctx, e.runner, e.cfg.HeicConverter, path)
		warns = append(warns, w...)
		if err != nil {
			e.logger.Error("ocr.heic.convert_failed", "path", path, "error", err)
			return Result{Warnings: warns}, err
		}
		defer cleanup()
		path = out
	}

	if err := validateDecodable(path); err != nil {
		e.logger.Error("ocr.extract.undecodable", "path", path, "error", err)
		return Result{Warnings: warns}, err
	}

	res, err := e.extractImage(ctx, path)
	res.Duration = time.Since(start)
	res.Warnings = append(warns, res.Warnings...)
	if err != nil {
		return res, err
	}
	if strings.TrimSpace(res.Text) == "" {
		e.logger.Warn("ocr.extract.empty", "path", path, "elapsed_ms", res.Duration.Milliseconds())
		return res, ErrNoText
	}
	return res, nil
}

// ExtractBytes runs OCR on an in-memory image, e.g. one uploaded over the
// API. ext is the logical extension ("png", "jpg", ...).
func (e *Extractor) ExtractBytes(ctx context.Context, data []byte, ext string) (Result, error) {
	ext = constants.NormalizeExt(ext)
	if !constants.IsAllowedExt(ext) {
		return Result{}, fmt.Errorf("unsupported extension %q: %w", ext, ErrUndecodable)
	}
	f, err := os.CreateTemp("", "menugen-upload-*."+ext)
	if err != nil {
		return Result{}, fmt.Errorf("temp file: %w", err)
	}
	defer func() { _ = os.Remove(f.Name()) }()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return Result{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("close temp file: %w", err)
	}
	return e.Extract(ctx, f.Name())
}

// validateDecodable confirms the file parses as an image before handing it
// to tesseract, so "bad upload" and "OCR engine error" stay distinct.
func validateDecodable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer func() { _ = f.Close() }()
	if _, _, err := image.DecodeConfig(f); err != nil {
		return fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	return nil
}
