package initialize

import (
	"bytes"
	"sync"
	"testing"

	"notedeck/global"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestApplyLogLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	assert.True(t, applyLogLevel("debug"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	assert.False(t, applyLogLevel("shouting"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel(), "invalid input must not change the level")
}

func TestSetupLoggerFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	SetupLogger("nonsense")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestLogLevelReloadWhileLogging(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	var buf bytes.Buffer
	global.Logger = zerolog.New(&syncWriter{w: &buf})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				applyLogLevel("debug")
				applyLogLevel("warn")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				global.Logger.Info().Msg("request")
			}
		}()
	}
	wg.Wait()
}

type syncWriter struct {
	mu sync.Mutex
	w  *bytes.Buffer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}
