// convert-images recompresses every PNG, JPEG and WebP under a directory
// into a sibling .webp file and reports the bytes saved.
//
// Usage:
//
//	convert-images -root ./public -q 82
//	convert-images -root ./public/images -max-width 1600
package main

import (
	"flag"
	"log"
	"os"

	"github.com/Zachkp/portfolio/internal/imageconv"
)

func main() {
	var (
		root     string
		quality  float64
		maxWidth int
	)
	flag.StringVar(&root, "root", imageconv.DefaultRoot, "directory to scan recursively")
	flag.Float64Var(&quality, "q", imageconv.DefaultQuality, "WebP quality (0-100)")
	flag.IntVar(&maxWidth, "max-width", 0, "downscale images wider than this (0 = keep size)")
	flag.Parse()

	logger := log.New(os.Stdout, "", 0)
	_, err := imageconv.Run(imageconv.Options{
		Root:     root,
		Quality:  float32(quality),
		MaxWidth: maxWidth,
		Logger:   logger,
	})
	if err != nil {
		log.Fatalf("convert-images: %v", err)
	}
}
