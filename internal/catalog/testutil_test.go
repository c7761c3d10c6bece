package catalog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

const movieNFOTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<movie>
    <title>%s</title>
    <year>%s</year>
    <plot>%s</plot>
    <fileinfo>
        <streamdetails>
            <audio><codec>DTS</codec><language>eng</language><channels>6</channels></audio>
            <audio><codec>AC3</codec><language>ger</language><channels>6</channels></audio>
            <subtitle><language>eng</language></subtitle>
            <subtitle><language>ger</language></subtitle>
            <subtitle><language>fra</language></subtitle>
        </streamdetails>
    </fileinfo>
</movie>`

const showNFOTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<tvshow>
    <title>%s</title>
    <year>%s</year>
    <plot>%s</plot>
</tvshow>`

const episodeNFOTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<episodedetails>
    <title>Episode %d</title>
    <fileinfo>
        <streamdetails>
            <audio><codec>AAC</codec><language>eng</language><channels>2</channels></audio>
            <subtitle><language>eng</language></subtitle>
            <subtitle><language>ger</language></subtitle>
        </streamdetails>
    </fileinfo>
</episodedetails>`
