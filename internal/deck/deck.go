// Package deck simulates the transport of a record player: play/pause, a
// track list with wrap-around navigation, and elapsed time advanced by the
// host's update loop. No audio is produced.
package deck

import (
	"log/slog"
	"time"
)

// Deck is the playback controller. It is driven from the host's update loop.
type Deck struct {
	tracks  []Track
	index   int
	playing bool
	elapsed time.Duration

	// OnPlay fires when playback turns on.
	OnPlay func()
	// OnRestart fires when the track changes while playing.
	OnRestart func()

	log *slog.Logger
}

// New creates a paused deck loaded at the first track. An empty list falls
// back to DefaultTracks.
func New(tracks []Track, logger *slog.Logger) *Deck {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Deck{log: logger}
	d.SetTracks(tracks)
	return d
}

// SetTracks replaces the track list and loads its first track. Playback
// state is kept.
func (d *Deck) SetTracks(tracks []Track) {
	if len(tracks) == 0 {
		tracks = DefaultTracks()
	}
	d.tracks = append([]Track(nil), tracks...)
	d.load(0)
}

// Tracks returns the track list.
func (d *Deck) Tracks() []Track { return d.tracks }

// IsPlaying reports whether simulated playback is on.
func (d *Deck) IsPlaying() bool { return d.playing }

// Index returns the current track index.
func (d *Deck) Index() int { return d.index }

// Current returns the loaded track.
func (d *Deck) Current() Track { return d.tracks[d.index] }

// Elapsed returns the simulated position in the current track.
func (d *Deck) Elapsed() time.Duration { return d.elapsed }

// Progress returns the position in the current track as a 0..1 ratio, or 0
// for tracks without a length.
func (d *Deck) Progress() float64 {
	length := d.Current().Length.Duration()
	if length <= 0 {
		return 0
	}
	return float64(d.elapsed) / float64(length)
}

// Toggle flips playback.
func (d *Deck) Toggle() {
	d.playing = !d.playing
	d.log.Info("playback toggled", "playing", d.playing, "track", d.Current().Title)
	if d.playing && d.OnPlay != nil {
		d.OnPlay()
	}
}

// Next loads the following track, wrapping to the first.
func (d *Deck) Next() {
	d.change((d.index + 1) % len(d.tracks))
}

// Prev loads the preceding track, wrapping to the last.
func (d *Deck) Prev() {
	d.change((d.index - 1 + len(d.tracks)) % len(d.tracks))
}

// Select loads track i and starts playback if paused. Out of range indexes
// are ignored.
func (d *Deck) Select(i int) {
	if i < 0 || i >= len(d.tracks) {
		return
	}
	d.load(i)
	if !d.playing {
		d.Toggle()
	}
}

// Advance moves the simulated position by dt while playing. A track with a
// known length rolls over to the next one when it ends.
func (d *Deck) Advance(dt time.Duration) {
	if !d.playing {
		return
	}
	d.elapsed += dt
	length := d.Current().Length.Duration()
	if length > 0 && d.elapsed >= length {
		d.Next()
	}
}

func (d *Deck) change(i int) {
	d.load(i)
	if d.playing && d.OnRestart != nil {
		d.OnRestart()
	}
}

func (d *Deck) load(i int) {
	d.index = i
	d.elapsed = 0
	t := d.tracks[i]
	d.log.Debug("track loaded", "index", i, "title", t.Title, "artist", t.Artist)
}
