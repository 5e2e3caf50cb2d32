package wifi

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgeswarm/swarmprov/internal/testutil"
)

const phyInfo = `Wiphy phy0
	max # scan SSIDs: 4
	Supported interface modes:
		 * IBSS
		 * managed
		 * AP
		 * AP/VLAN
		 * monitor
	Band 1:
		Capabilities: 0x1862
`

const phyInfoNoAP = `Wiphy phy1
	Supported interface modes:
		 * managed
		 * AP/VLAN
		 * monitor
	Band 1:
`

func sysfsPhy(name string) func(string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		if name == "" {
			return nil, os.ErrNotExist
		}
		return []byte(name + "\n"), nil
	}
}

func TestParseSupportedModes(t *testing.T) {
	assert.Equal(t, []string{"IBSS", "managed", "AP", "AP/VLAN", "monitor"}, ParseSupportedModes(phyInfo))
	assert.Empty(t, ParseSupportedModes("Wiphy phy0\n\tBand 1:\n"))
}

func TestSupportsAPFromSysfsPhy(t *testing.T) {
	runner := testutil.NewFakeRunner().On("iw phy phy0 info", testutil.Reply{Output: phyInfo})
	probe := Probe{Runner: runner, ReadFile: sysfsPhy("phy0")}

	ok, err := probe.SupportsAP(context.Background(), "wlan0")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"iw phy phy0 info"}, runner.Calls)
}

func TestSupportsAPIgnoresAPVLAN(t *testing.T) {
	runner := testutil.NewFakeRunner().On("iw phy phy1 info", testutil.Reply{Output: phyInfoNoAP})
	probe := Probe{Runner: runner, ReadFile: sysfsPhy("phy1")}

	ok, err := probe.SupportsAP(context.Background(), "wlan0")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPhyFallsBackToIwDev(t *testing.T) {
	runner := testutil.NewFakeRunner().
		On("iw dev wlan0 info", testutil.Reply{Output: "Interface wlan0\n\tifindex 3\n\twiphy 2\n\ttype managed\n"}).
		On("iw phy phy2 info", testutil.Reply{Output: phyInfo})
	probe := Probe{Runner: runner, ReadFile: sysfsPhy("")}

	ok, err := probe.SupportsAP(context.Background(), "wlan0")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"iw dev wlan0 info", "iw phy phy2 info"}, runner.Calls)
}

func TestPhyNotFound(t *testing.T) {
	runner := testutil.NewFakeRunner().On("iw dev wlan0 info", testutil.Reply{Output: "Interface wlan0\n"})
	probe := Probe{Runner: runner, ReadFile: sysfsPhy("")}

	_, err := probe.SupportsAP(context.Background(), "wlan0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no wiphy found for wlan0")
}

func TestProbeQueryFailure(t *testing.T) {
	queryErr := testutil.CommandError("iw phy phy0 info", 237, "command failed: No such device (-19)")
	runner := testutil.NewFakeRunner().On("iw phy phy0 info", testutil.Reply{Err: queryErr})
	probe := Probe{Runner: runner, ReadFile: sysfsPhy("phy0")}

	ok, err := probe.SupportsAP(context.Background(), "wlan0")
	require.Error(t, err)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, queryErr))
	assert.Contains(t, err.Error(), "query supported modes of wlan0")
}
