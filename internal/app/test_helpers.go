package app

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/vk/rps/internal/opponent"
	"github.com/vk/rps/internal/rps"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App reading input and playing against the scripted
// opponent throws. It returns the app, its game output and its log output.
func SetupAppTest(t *testing.T, cfg Config, input string, opponentThrows ...rps.Throw) (*App, *bytes.Buffer, *SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	var picker opponent.Picker
	if len(opponentThrows) > 0 {
		seq, err := opponent.NewSequence(opponentThrows...)
		if err != nil {
			t.Fatalf("invalid opponent script: %v", err)
		}
		picker = seq
	}

	out := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	testApp := NewApp(strings.NewReader(input), out, logBuffer, appConfig, picker)

	t.Cleanup(func() {
		if os.Getenv("RPS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, out, logBuffer
}
