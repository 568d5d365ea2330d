// meta/meta.go
package meta

import (
	"os"

	"github.com/pkg/errors"
)

// GoRoutines defines the default number of goroutines per search.
const GoRoutines = 8

// Episodes defines the default number of episodes for MCTS.
const Episodes = 150

// WithCutoff defines the default rollout cutoff for MCTS.
const WithCutoff = 100

// Games defines the default number of games per run.
const Games = 10

// DeviceEnv is the variable read by CUDA runtimes to pick a GPU.
const DeviceEnv = "CUDA_VISIBLE_DEVICES"

const (
	ModeTrain = "train"
	ModeTest  = "test"
)

// SelectDevice points the process at GPU 1 for training and GPU 0 for testing, and
// returns the chosen device.
func SelectDevice(mode string) (string, error) {
	var device string
	switch mode {
	case ModeTrain:
		device = "1"
	case ModeTest:
		device = "0"
	default:
		return "", errors.Errorf("unknown mode %q", mode)
	}

	if err := os.Setenv(DeviceEnv, device); err != nil {
		return "", errors.Wrapf(err, "failed to set %s", DeviceEnv)
	}
	return device, nil
}
