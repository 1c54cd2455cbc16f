// Package detector holds the ICARUS TPC readout addressing constants and
// the arithmetic used to translate between logical channel ids, wire
// planes, and the crate/board/channel electronics hierarchy.
package detector

import "fmt"

// Wire plane indices within a TPC.
const (
	Induction1 = iota
	Induction2
	Collection
	NPlanes
)

const (
	// ChannelsPerTPC is the number of logical channels instrumented per TPC.
	ChannelsPerTPC = 13824
	// ChannelsPerBoard is the number of front-end channels on one readout board.
	ChannelsPerBoard = 64
	// BoardsPerCrate is the number of readout boards behind one flange.
	BoardsPerCrate = 9
	// ChannelsPerCrate is the channel span of one mini-crate (flange).
	ChannelsPerCrate = ChannelsPerBoard * BoardsPerCrate
	// NTPC is the number of TPC volumes.
	NTPC = 4
	// WaveformTicks is the fixed length of a raw waveform in time ticks.
	WaveformTicks = 4096
)

// Wire-plane face envelope, in cm.
const (
	ZMin = -895.95
	ZMax = 895.95
	YMin = -181.70
	YMax = 134.80
)

var (
	planeNames     = [NPlanes]string{"Induction 1", "Induction 2", "Collection"}
	planeChannels  = [NPlanes]int{2304, 5760, 5760}
	planeDivisions = [NPlanes]int{288, 576, 576}
	tpcNames       = [NTPC]string{"EE", "EW", "WE", "WW"}
)

// PlaneName returns the human-readable name of a wire plane, or "" when the
// index is out of range.
func PlaneName(plane int) string {
	if plane < 0 || plane >= NPlanes {
		return ""
	}
	return planeNames[plane]
}

// PlaneChannels returns the number of channels on a wire plane.
func PlaneChannels(plane int) int {
	if plane < 0 || plane >= NPlanes {
		return 0
	}
	return planeChannels[plane]
}

// PlaneDivision returns the channel-id tick spacing used when plotting a
// wire plane.
func PlaneDivision(plane int) int {
	if plane < 0 || plane >= NPlanes {
		return 0
	}
	return planeDivisions[plane]
}

// TPCName maps a TPC index to its cryostat/side name (EE, EW, WE, WW).
func TPCName(tpc int) (string, error) {
	if tpc < 0 || tpc >= NTPC {
		return "", fmt.Errorf("tpc index %d out of range [0,%d)", tpc, NTPC)
	}
	return tpcNames[tpc], nil
}

// TPCNames returns the TPC names indexed by TPC number.
func TPCNames() []string {
	out := make([]string, NTPC)
	copy(out, tpcNames[:])
	return out
}

// TPCOf returns the TPC index that owns a logical channel id.
func TPCOf(channelID int) int {
	return channelID / ChannelsPerTPC
}

// ChannelRange returns the half-open logical channel id range [lo, hi) of
// a TPC.
func ChannelRange(tpc int) (lo, hi int) {
	lo = tpc * ChannelsPerTPC
	return lo, lo + ChannelsPerTPC
}

// CrateChannel flattens a (board, channel) address into the 0..575 channel
// number within a mini-crate.
func CrateChannel(board, ch int) int {
	return ChannelsPerBoard*board + ch
}

// PlaneOffset returns the first logical channel id of a wire plane within
// a TPC.
func PlaneOffset(tpc, plane int) int {
	off := ChannelsPerTPC * tpc
	for p := 0; p < plane && p < NPlanes; p++ {
		off += planeChannels[p]
	}
	return off
}
