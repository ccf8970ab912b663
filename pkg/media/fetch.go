package media

import (
	"time"

	"github.com/cavaliercoder/grab"

	"github.com/lexero/logospin/pkg/logger"
)

// Fetch downloads url into destDir and returns the local file name.
func Fetch(url, destDir string, log *logger.Logger) (string, error) {
	client := grab.NewClient()
	req, err := grab.NewRequest(destDir, url)
	if err != nil {
		return "", err
	}

	log.Info().Str("url", url).Msg("downloading input")
	resp := client.Do(req)

	t := time.NewTicker(500 * time.Millisecond)
	defer t.Stop()

Loop:
	for {
		select {
		case <-t.C:
			log.Debug().Msgf("transferred %v / %v bytes (%.2f%%)",
				resp.BytesComplete(), resp.Size(), 100*resp.Progress())
		case <-resp.Done:
			break Loop
		}
	}

	if err := resp.Err(); err != nil {
		return "", err
	}
	return resp.Filename, nil
}
