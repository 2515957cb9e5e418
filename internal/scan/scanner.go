package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/bogem/id3v2"
	"golang.org/x/sync/errgroup"

	ioutils "github.com/mwhitford/songchart/internal/io"
	"github.com/mwhitford/songchart/internal/model"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
)

// ProgressEvent represents a scan progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Config holds library scan settings.
type Config struct {
	// Concurrency bounds the number of files read in parallel.
	// Values <= 0 fall back to 4.
	Concurrency int

	// SaveCoverThumbnails enables exporting one embedded cover per
	// album as a JPEG thumbnail.
	SaveCoverThumbnails bool

	// ThumbnailDir is where thumbnails are written.
	ThumbnailDir string

	// ThumbnailMaxSize is the maximum thumbnail edge in pixels.
	// Zero disables resizing (covers are converted to JPEG as-is).
	ThumbnailMaxSize int
}

// Scanner reads song records out of an ID3-tagged MP3 library.
//
// Scanner walks a directory tree, reads each MP3's tags concurrently,
// and builds model.Song records carrying artist, title, album, year,
// duration (TLEN) and POPM play-count/rating data. Optionally it
// exports one embedded cover per album as a thumbnail.
//
// Example:
//
//	scanner := scan.NewScanner(cfg, func(e scan.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	songs, err := scanner.Scan(ctx, "/music")
type Scanner struct {
	cfg        *Config
	images     *ioutils.ImageService
	onProgress func(ProgressEvent)

	mu     sync.Mutex
	songs  []*model.Song
	covers map[string][]byte // album name -> first embedded cover seen
}

// NewScanner creates a Scanner.
//
// onProgress may be nil; progress events are then discarded.
func NewScanner(cfg *Config, onProgress func(ProgressEvent)) *Scanner {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Scanner{
		cfg:        cfg,
		images:     ioutils.NewImageService(),
		onProgress: onProgress,
		covers:     make(map[string][]byte),
	}
}

// Scan walks root and returns a song record per readable MP3 file.
//
// Files whose tags cannot be read are skipped with a warning event;
// they never fail the scan. The returned slice is sorted by file path
// so repeated scans of the same library are deterministic. Scan
// returns an error only when the walk itself fails or ctx is
// cancelled.
func (s *Scanner) Scan(ctx context.Context, root string) ([]*model.Song, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".mp3") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", root, err)
	}

	s.progress(ProgressEvent{Message: fmt.Sprintf("Found %d MP3 files under %s", len(paths), root), Level: LevelInfo})

	concurrency := s.cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			song, cover, err := s.readFile(path)
			if err != nil {
				s.progress(ProgressEvent{Message: fmt.Sprintf("Skipping %s: %v", path, err), Level: LevelWarning})
				return nil
			}

			s.mu.Lock()
			s.songs = append(s.songs, song)
			if cover != nil && song.Album != "" {
				if _, seen := s.covers[song.Album]; !seen {
					s.covers[song.Album] = cover
				}
			}
			s.mu.Unlock()

			s.progress(ProgressEvent{Message: fmt.Sprintf("Read %s", song), Level: LevelVerbose})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cfg.SaveCoverThumbnails {
		s.exportThumbnails()
	}

	sort.Slice(s.songs, func(i, j int) bool {
		return s.songs[i].Path < s.songs[j].Path
	})

	return s.songs, nil
}

// readFile reads one MP3's tags into a song record, returning the raw
// embedded cover art alongside it when thumbnails are enabled.
func (s *Scanner) readFile(path string) (*model.Song, []byte, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, nil, err
	}
	defer tag.Close()

	song := &model.Song{
		Artist: strings.TrimSpace(tag.Artist()),
		Title:  strings.TrimSpace(tag.Title()),
		Album:  strings.TrimSpace(tag.Album()),
		Path:   path,
	}
	if song.Title == "" {
		base := filepath.Base(path)
		song.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if song.Artist == "" {
		song.Artist = "Unknown Artist"
	}

	song.Year = readYear(tag)

	// Duration (TLEN, milliseconds), present on well-tagged files.
	if ms, err := strconv.Atoi(strings.TrimSpace(tag.GetTextFrame("TLEN").Text)); err == nil {
		song.DurationMS = ms
	}

	// Popularimeter: play counter plus a 0-255 rating mapped onto the
	// 0-100 popularity scale datasets use.
	for _, frame := range tag.GetFrames("POPM") {
		popm, ok := frame.(id3v2.PopularimeterFrame)
		if !ok {
			continue
		}
		if popm.Counter != nil && popm.Counter.IsInt64() {
			song.PlayCount = popm.Counter.Int64()
		}
		if popm.Rating > 0 {
			song.Popularity = int(popm.Rating) * 100 / 255
		}
		break
	}

	var cover []byte
	if s.cfg.SaveCoverThumbnails {
		for _, frame := range tag.GetFrames(tag.CommonID("Attached picture")) {
			pic, ok := frame.(id3v2.PictureFrame)
			if !ok {
				continue
			}
			cover = pic.Picture
			break
		}
	}

	return song, cover, nil
}

// readYear extracts the release year from TYER (ID3v2.3) or TDRC
// (ID3v2.4), whichever is present.
func readYear(tag *id3v2.Tag) int {
	for _, id := range []string{"TYER", "TDRC"} {
		text := strings.TrimSpace(tag.GetTextFrame(id).Text)
		if len(text) >= 4 {
			if year, err := strconv.Atoi(text[:4]); err == nil {
				return year
			}
		}
	}
	return 0
}

// exportThumbnails writes one JPEG thumbnail per album into the
// configured thumbnail directory.
func (s *Scanner) exportThumbnails() {
	if len(s.covers) == 0 {
		return
	}

	if err := ioutils.EnsureDir(s.cfg.ThumbnailDir); err != nil {
		s.progress(ProgressEvent{Message: fmt.Sprintf("Could not create thumbnail dir: %v", err), Level: LevelError})
		return
	}

	for album, data := range s.covers {
		var (
			thumb []byte
			err   error
		)
		if s.cfg.ThumbnailMaxSize > 0 {
			thumb, err = s.images.ResizeImage(data, s.cfg.ThumbnailMaxSize, s.cfg.ThumbnailMaxSize)
		} else {
			thumb, err = s.images.ConvertToJPEG(data)
		}
		if err != nil {
			s.progress(ProgressEvent{Message: fmt.Sprintf("Could not process cover for %q: %v", album, err), Level: LevelWarning})
			continue
		}

		path := filepath.Join(s.cfg.ThumbnailDir, ioutils.SanitizeFileName(album)+".jpg")
		if err := ioutils.WriteFile(path, thumb); err != nil {
			s.progress(ProgressEvent{Message: fmt.Sprintf("Could not write %s: %v", path, err), Level: LevelWarning})
			continue
		}

		s.progress(ProgressEvent{Message: fmt.Sprintf("Saved thumbnail %s", path), Level: LevelVerbose})
	}
}

func (s *Scanner) progress(event ProgressEvent) {
	if s.onProgress != nil {
		s.onProgress(event)
	}
}
