package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mwhitford/songchart/internal/chart"
	"github.com/mwhitford/songchart/internal/config"
	"github.com/mwhitford/songchart/internal/dataset"
	"github.com/mwhitford/songchart/internal/fetch"
	ioutils "github.com/mwhitford/songchart/internal/io"
	"github.com/mwhitford/songchart/internal/model"
	"github.com/mwhitford/songchart/internal/scan"
)

func main() {
	// Command line flags
	var (
		inputFlag      = flag.String("input", "", "Path to a CSV song dataset")
		urlFlag        = flag.String("url", "", "URL of a CSV song dataset to download")
		scanFlag       = flag.String("scan", "", "Music directory to scan for tagged MP3 files")
		configFlag     = flag.String("config", "", "Path to config file")
		sortFlag       = flag.String("sort", "", "Sort key: popularity, duration, year, plays")
		topFlag        = flag.Int("top", 0, "Chart size (0 = use config, negative = all songs)")
		formatFlag     = flag.String("format", "", "Output format: text, csv, m3u, json")
		outputFlag     = flag.String("output", "", "Output file (default: print to stdout)")
		thumbnailsFlag = flag.Bool("thumbnails", false, "Export album cover thumbnails while scanning")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag     = flag.Bool("dry-run", false, "Load songs without rendering a chart")
	)

	flag.Parse()

	if *inputFlag == "" && *urlFlag == "" && *scanFlag == "" && flag.NArg() == 0 {
		fmt.Println("songchart - Build ranked song charts")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  songchart -input <songs.csv> [options]")
		fmt.Println("  songchart -url <https://…/songs.csv> [options]")
		fmt.Println("  songchart -scan <music dir> [options]")
		fmt.Println("  songchart <songs.csv> [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: songchart-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *inputFlag == "" && flag.NArg() > 0 {
		*inputFlag = flag.Arg(0)
	}
	if *inputFlag != "" {
		settings.DatasetPath = *inputFlag
	}
	if *urlFlag != "" {
		settings.DatasetURL = *urlFlag
	}
	if *scanFlag != "" {
		settings.MusicDirPath = *scanFlag
	}
	if *sortFlag != "" {
		settings.SortKey = *sortFlag
	}
	if *formatFlag != "" {
		settings.OutputFormat = *formatFlag
	}
	if *outputFlag != "" {
		settings.OutputPath = *outputFlag
	}
	if *topFlag != 0 {
		settings.ChartSize = *topFlag
	}
	if *thumbnailsFlag {
		settings.SaveCoverThumbnails = true
	}

	key, err := chart.ParseSortKey(settings.SortKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	format, err := chart.ParseOutputFormat(settings.OutputFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	fmt.Println("🎵 songchart")
	fmt.Println()

	songs, err := loadSongs(ctx, settings, *scanFlag != "", *verboseFlag)
	if err != nil {
		if ctx.Err() != nil {
			fmt.Println("Cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error loading songs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Loaded %d songs\n", len(songs))

	if *dryRunFlag {
		fmt.Println("[Dry run - no chart rendered]")
		return
	}

	list := chart.NewBuilder(key).Build(songs)

	size := settings.ChartSize
	if size <= 0 {
		size = chart.Len(list)
	}
	top := chart.Top(list, size)

	title := fmt.Sprintf("Top %d by %s", len(top), key)
	content, err := chart.NewRenderer(format, settings.M3UExtended).Render(title, top)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		os.Exit(1)
	}

	if settings.OutputPath == "" {
		fmt.Println()
		fmt.Print(content)
		return
	}

	if err := ioutils.EnsureDir(filepath.Dir(settings.OutputPath)); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}
	if err := ioutils.WriteFile(settings.OutputPath, []byte(content)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✨ Wrote %s\n", settings.OutputPath)
}

// loadSongs gathers songs from the configured source, in precedence
// order: explicit scan, remote dataset, local dataset.
func loadSongs(ctx context.Context, settings *config.Settings, scanRequested, verbose bool) ([]*model.Song, error) {
	switch {
	case scanRequested:
		scanner := scan.NewScanner(settings.ToScanConfig(), func(event scan.ProgressEvent) {
			if event.Level == scan.LevelVerbose && !verbose {
				return
			}
			prefix := "   "
			switch event.Level {
			case scan.LevelError:
				prefix = "❌ "
			case scan.LevelWarning:
				prefix = "⚠️  "
			case scan.LevelInfo:
				prefix = "ℹ️  "
			}
			fmt.Println(prefix + event.Message)
		})
		return scanner.Scan(ctx, settings.MusicDirPath)

	case settings.DatasetURL != "":
		cachePath := filepath.Join(os.TempDir(), "songchart-dataset.csv")
		fmt.Printf("📥 Downloading %s\n", settings.DatasetURL)

		client := fetch.NewClient()
		err := client.DownloadFile(ctx, settings.DatasetURL, cachePath, func(written, total int64) {
			if total > 0 {
				fmt.Printf("\r   %.1f%% ", float64(written)/float64(total)*100)
			}
		})
		fmt.Println()
		if err != nil {
			return nil, err
		}

		return parseDataset(cachePath, verbose)

	default:
		return parseDataset(settings.DatasetPath, verbose)
	}
}

func parseDataset(path string, verbose bool) ([]*model.Song, error) {
	result, err := dataset.NewParser().ParseFile(path)
	if err != nil {
		return nil, err
	}
	if result.Skipped > 0 && verbose {
		fmt.Printf("⚠️  Skipped %d malformed rows\n", result.Skipped)
	}
	return result.Songs, nil
}
