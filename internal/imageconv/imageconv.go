// Package imageconv batch-converts site images to WebP.
package imageconv

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	DefaultRoot    = "./public"
	DefaultQuality = 82
)

// Extensions lists the inputs picked up by Discover.
var Extensions = []string{".png", ".jpg", ".jpeg", ".webp"}

type Options struct {
	Root    string
	Quality float32
	// MaxWidth downscales wider images, keeping aspect ratio. Zero keeps
	// the original size.
	MaxWidth int
	Logger   *log.Logger
}

// Result describes one file.
type Result struct {
	Path       string
	Output     string
	InputSize  int64
	OutputSize int64
	Err        error
}

// Saved is the byte difference between input and output. It can be
// negative when recompression grows a file.
func (r Result) Saved() int64 {
	return r.InputSize - r.OutputSize
}

type Report struct {
	Converted int
	Failed    int
	Saved     int64
	Results   []Result
}

// Discover walks root and returns every image with a known extension.
func Discover(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if hasImageExt(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

// Run converts every image under opts.Root. A failing file is recorded in
// the report and the batch carries on; only a failed walk returns an
// error.
func Run(opts Options) (Report, error) {
	opts = withDefaults(opts)

	files, err := Discover(opts.Root)
	if err != nil {
		return Report{}, err
	}
	opts.Logger.Printf("Found %d images to process...", len(files))

	var report Report
	for _, file := range files {
		res := ConvertFile(file, opts)
		report.Results = append(report.Results, res)

		rel := strings.TrimPrefix(file, filepath.Clean(opts.Root))
		if res.Err != nil {
			report.Failed++
			opts.Logger.Printf("Failed %s: %v", rel, res.Err)
			continue
		}
		report.Converted++
		report.Saved += res.Saved()
		opts.Logger.Printf("Converted %s: saved %.1f KB", rel, float64(res.Saved())/1024)
	}

	opts.Logger.Printf("Done: %d converted, %d failed", report.Converted, report.Failed)
	opts.Logger.Printf("Total saved: %.0f KB", float64(report.Saved)/1024)
	return report, nil
}

// ConvertFile re-encodes path as a sibling .webp file.
func ConvertFile(path string, opts Options) Result {
	opts = withDefaults(opts)
	res := Result{Path: path, Output: OutputPath(path)}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.InputSize = int64(len(data))

	img, err := decode(path, data)
	if err != nil {
		res.Err = fmt.Errorf("decode: %w", err)
		return res
	}
	if opts.MaxWidth > 0 {
		img = fitWidth(img, opts.MaxWidth)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: opts.Quality}); err != nil {
		res.Err = fmt.Errorf("encode: %w", err)
		return res
	}
	if err := os.WriteFile(res.Output, buf.Bytes(), 0o644); err != nil {
		res.Err = err
		return res
	}
	res.OutputSize = int64(buf.Len())
	return res
}

// OutputPath swaps path's extension for .webp.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".webp"
}

func withDefaults(opts Options) Options {
	if opts.Root == "" {
		opts.Root = DefaultRoot
	}
	if opts.Quality <= 0 {
		opts.Quality = DefaultQuality
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return opts
}

func hasImageExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func decode(path string, data []byte) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		return webp.Decode(bytes.NewReader(data))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

func fitWidth(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxWidth {
		return src
	}
	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
