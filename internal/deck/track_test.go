package deck

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTracks(t *testing.T) {
	in := "title,artist,art,length\n" +
		"ISOLATION WARD,SINGLEMOTHEROFTWO,public/1.jpg,3:41\n" +
		"VOLTAGE_LEAK,SINGLEMOTHEROFTWO,,2m58s\n" +
		"INTERLUDE,SINGLEMOTHEROFTWO,,\n"

	tracks, err := LoadTracks(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, tracks, 3)

	assert.Equal(t, "public/1.jpg", tracks[0].Art)
	assert.Equal(t, 3*time.Minute+41*time.Second, tracks[0].Length.Duration())
	assert.Equal(t, 2*time.Minute+58*time.Second, tracks[1].Length.Duration())
	assert.Zero(t, tracks[2].Length)
}

func TestLoadTracksErrors(t *testing.T) {
	cases := map[string]string{
		"header only": "title,artist,art,length\n",
		"empty":       "",
		"bad length":  "title,artist,art,length\nx,y,,3:75\n",
		"no title":    "title,artist,art,length\n,y,,1:00\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadTracks(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestLoadTracksEmptyIsErrNoTracks(t *testing.T) {
	_, err := LoadTracks(strings.NewReader("title,artist,art,length\n"))
	assert.ErrorIs(t, err, ErrNoTracks)
}

func TestWriteTracksReadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTracks(&buf, DefaultTracks()))

	path := filepath.Join(t.TempDir(), "tracks.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	tracks, err := LoadTracksFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTracks(), tracks)
}

func TestLoadTracksFileMissing(t *testing.T) {
	_, err := LoadTracksFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestLengthUnmarshal(t *testing.T) {
	var l Length
	require.NoError(t, l.UnmarshalCSV(" 10:05 "))
	assert.Equal(t, 10*time.Minute+5*time.Second, l.Duration())

	assert.Error(t, l.UnmarshalCSV("-1s"))
	assert.Error(t, l.UnmarshalCSV("a:10"))
	assert.Error(t, l.UnmarshalCSV("soon"))

	s, err := Length(65 * time.Second).MarshalCSV()
	require.NoError(t, err)
	assert.Equal(t, "1:05", s)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "0:00", FormatTime(0))
	assert.Equal(t, "0:59", FormatTime(59*time.Second+900*time.Millisecond))
	assert.Equal(t, "3:41", FormatTime(3*time.Minute+41*time.Second))
	assert.Equal(t, "72:05", FormatTime(72*time.Minute+5*time.Second))
	assert.Equal(t, "0:00", FormatTime(-time.Second))
	assert.Equal(t, "5:03", DefaultTracks()[3].Length.String())
}
