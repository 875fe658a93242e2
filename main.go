package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/merridan/pngraw/internal/config"
	"github.com/merridan/pngraw/internal/converter"
	"github.com/merridan/pngraw/internal/logging"
	"github.com/merridan/pngraw/internal/png"
)

// findPNGFiles finds all .png files in a directory
func findPNGFiles(dir string, recursive bool) ([]string, error) {
	var pngFiles []string

	if recursive {
		err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(strings.ToLower(path), ".png") {
				pngFiles = append(pngFiles, path)
			}
			return nil
		})
		return pngFiles, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), ".png") {
			pngFiles = append(pngFiles, filepath.Join(dir, entry.Name()))
		}
	}
	return pngFiles, nil
}

func main() {
	var (
		in         string
		outDir     string
		format     string
		logLevel   string
		numWorkers int
		verifyCRC  bool
	)

	rootCmd := &cobra.Command{
		Use:           "pngraw",
		Short:         "Decode PNG files to raw pixel data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [file...]",
		Short: "Decode PNG files and write the result in the chosen format",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %v", err)
			}
			applyConfig(cfg, &in, &outDir, &format, &logLevel, &numWorkers)
			logging.SetLevel(logLevel)

			pngFiles := args
			if len(pngFiles) == 0 {
				if in == "" {
					return fmt.Errorf("no input files given and input_path not configured in config.json")
				}
				if _, err := os.Stat(in); err != nil {
					return err
				}
				pngFiles, err = findPNGFiles(in, true)
				if err != nil {
					return fmt.Errorf("failed to find .png files in directory: %v", err)
				}
				if len(pngFiles) == 0 {
					return fmt.Errorf("no .png files found in directory: %s", in)
				}
			}
			logging.Info("found %d .png file(s)", len(pngFiles))

			if outDir != "" {
				if err := os.MkdirAll(outDir, 0755); err != nil {
					return fmt.Errorf("failed to create directory %s: %v", outDir, err)
				}
			}

			// Parallel worker pool
			jobs := make(chan string, numWorkers)
			results := make(chan error, len(pngFiles))

			worker := func(id int) {
				for pngFile := range jobs {
					logging.Debug("worker %d processing: %s", id, filepath.Base(pngFile))
					outPath := converter.OutputPath(pngFile, outDir, format)
					err := converter.ConvertFile(pngFile, outPath, format, verifyCRC)
					if err != nil {
						logging.Error("failed to process %s: %v", pngFile, err)
					}
					results <- err
				}
			}

			for w := 0; w < numWorkers; w++ {
				go worker(w)
			}
			for _, pngFile := range pngFiles {
				jobs <- pngFile
			}
			close(jobs)

			var failed int
			for i := 0; i < len(pngFiles); i++ {
				if <-results != nil {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed", failed, len(pngFiles))
			}
			return nil
		},
	}
	decodeCmd.Flags().StringVar(&in, "in", "", "input directory containing .png files (uses input_path from config.json if blank)")
	decodeCmd.Flags().StringVar(&outDir, "out-dir", "", "output directory for generated files")
	decodeCmd.Flags().StringVar(&format, "format", "", "output format: png, bmp, ppm, raw")
	decodeCmd.Flags().StringVar(&logLevel, "log-level", "", "logging level: debug, info, warn, error")
	decodeCmd.Flags().IntVar(&numWorkers, "workers", 0, "number of parallel workers")
	decodeCmd.Flags().BoolVar(&verifyCRC, "verify-crc", false, "verify the stored CRC of every chunk before decoding")

	infoCmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print the chunk inventory and parsed header of a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printInfo(args[0])
		},
	}

	rootCmd.AddCommand(decodeCmd, infoCmd)
	if err := rootCmd.Execute(); err != nil {
		logging.Fatal("%v", err)
	}
}

// applyConfig fills unset flags from the config file.
func applyConfig(cfg *config.Config, in, outDir, format, logLevel *string, workers *int) {
	if *in == "" {
		*in = cfg.InputPath
	}
	if *outDir == "" {
		*outDir = cfg.OutputDir
	}
	if *format == "" {
		*format = cfg.Format
	}
	if *logLevel == "" {
		*logLevel = cfg.LogLevel
	}
	if *workers <= 0 {
		*workers = cfg.Workers
	}
}

func printInfo(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	file, err := png.ReadFile(f)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %v", path, err)
	}

	for _, chunk := range file.Chunks {
		fmt.Println(chunk)
	}
	header, err := file.Header()
	if err != nil {
		return err
	}
	fmt.Println(header)
	return nil
}
