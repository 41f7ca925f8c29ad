package deck

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// Track is one entry of the track list.
type Track struct {
	Title  string `csv:"title"`
	Artist string `csv:"artist"`
	Art    string `csv:"art"` // label image path, optional
	Length Length `csv:"length"`
}

// Length is a track duration read from CSV as "m:ss" or a Go duration string.
type Length time.Duration

// UnmarshalCSV implements gocsv.TypeUnmarshaller.
func (l *Length) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*l = 0
		return nil
	}
	if mm, ss, ok := strings.Cut(s, ":"); ok {
		m, err := strconv.Atoi(mm)
		if err != nil {
			return fmt.Errorf("invalid minutes in length %q: %w", s, err)
		}
		sc, err := strconv.Atoi(ss)
		if err != nil {
			return fmt.Errorf("invalid seconds in length %q: %w", s, err)
		}
		if m < 0 || sc < 0 || sc >= 60 {
			return fmt.Errorf("length %q out of range", s)
		}
		*l = Length(time.Duration(m)*time.Minute + time.Duration(sc)*time.Second)
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid length %q: %w", s, err)
	}
	if d < 0 {
		return fmt.Errorf("length %q is negative", s)
	}
	*l = Length(d)
	return nil
}

// MarshalCSV implements gocsv.TypeMarshaller.
func (l Length) MarshalCSV() (string, error) {
	return l.String(), nil
}

// String formats l the way the CSV stores it.
func (l Length) String() string { return FormatTime(time.Duration(l)) }

// Duration returns l as a time.Duration.
func (l Length) Duration() time.Duration { return time.Duration(l) }

// FormatTime renders a track position or length as m:ss. Negative values
// render as 0:00.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// ErrNoTracks is returned when a track list holds no rows.
var ErrNoTracks = errors.New("track list is empty")

// LoadTracks reads a CSV track list with a title,artist,art,length header.
func LoadTracks(r io.Reader) ([]Track, error) {
	var tracks []Track
	if err := gocsv.Unmarshal(r, &tracks); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, ErrNoTracks
		}
		return nil, fmt.Errorf("parsing track list: %w", err)
	}
	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}
	for i, t := range tracks {
		if strings.TrimSpace(t.Title) == "" {
			return nil, fmt.Errorf("track %d has no title", i+1)
		}
	}
	return tracks, nil
}

// LoadTracksFile opens path and reads it with LoadTracks.
func LoadTracksFile(path string) ([]Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening track list: %w", err)
	}
	defer f.Close()
	return LoadTracks(f)
}

// WriteTracks writes tracks as CSV in the format LoadTracks reads.
func WriteTracks(w io.Writer, tracks []Track) error {
	return gocsv.Marshal(tracks, w)
}

// DefaultTracks is the built-in track list.
func DefaultTracks() []Track {
	const artist = "SINGLEMOTHEROFTWO"
	return []Track{
		{Title: "ISOLATION WARD", Artist: artist, Length: Length(3*time.Minute + 41*time.Second)},
		{Title: "DOMESTIC DECAY", Artist: artist, Length: Length(4*time.Minute + 12*time.Second)},
		{Title: "VOLTAGE_LEAK", Artist: artist, Length: Length(2*time.Minute + 58*time.Second)},
		{Title: "STRUCTURAL RHYTHM", Artist: artist, Length: Length(5*time.Minute + 3*time.Second)},
	}
}
