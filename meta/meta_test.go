package meta

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectDevice(t *testing.T) {
	cases := []struct {
		mode   string
		device string
	}{
		{mode: ModeTrain, device: "1"},
		{mode: ModeTest, device: "0"},
	}

	for _, c := range cases {
		t.Run(c.mode, func(t *testing.T) {
			t.Setenv(DeviceEnv, "")

			device, err := SelectDevice(c.mode)

			require.NoError(t, err)
			require.Equal(t, c.device, device)
			require.Equal(t, c.device, os.Getenv(DeviceEnv))
		})
	}

	t.Run("unknown mode", func(t *testing.T) {
		t.Setenv(DeviceEnv, "7")

		_, err := SelectDevice("serve")

		require.Error(t, err)
		require.Equal(t, "7", os.Getenv(DeviceEnv), "Environment should be left alone")
	})
}
