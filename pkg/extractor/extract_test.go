package extractor

import (
	"testing"

	"github.com/qmn/pershing/pkg/cell"
	"github.com/qmn/pershing/pkg/config"
)

func straightNet(length int) []cell.Coord {
	net := make([]cell.Coord, length)
	for i := range net {
		net[i] = cell.Coord{Y: 1, Z: 0, X: i}
	}
	return net
}

func TestExtractSegmentStraightWireRun(t *testing.T) {
	e := New(config.DefaultExtractorConfig())
	net := straightNet(3)
	start := cell.Coord{Y: 1, Z: 0, X: -1}
	stop := cell.Coord{Y: 1, Z: 0, X: 3}

	seg, err := e.ExtractSegment(net, start, stop)
	if err != nil {
		t.Fatalf("ExtractSegment: %v", err)
	}
	if len(seg) == 0 {
		t.Fatal("expected a non-empty extracted segment")
	}
	for _, tc := range seg {
		if tc.Token != Wire && tc.Token != Repeater {
			t.Fatalf("unexpected token %v on a straight run", tc.Token)
		}
	}
}

func TestExtractSegmentInsertsRepeaterBeforeStrengthFloor(t *testing.T) {
	cfg := config.ExtractorConfig{StartSignalStrength: 3, MinSignalStrength: 1}
	e := New(cfg)
	net := straightNet(6)
	start := cell.Coord{Y: 1, Z: 0, X: -1}
	stop := cell.Coord{Y: 1, Z: 0, X: 6}

	seg, err := e.ExtractSegment(net, start, stop)
	if err != nil {
		t.Fatalf("ExtractSegment: %v", err)
	}

	found := false
	for _, tc := range seg {
		if tc.Token == Repeater {
			found = true
		}
	}
	if !found {
		t.Fatal("expected at least one repeater on a long low-strength run")
	}
}

func TestDetermineMovementClassifiesVias(t *testing.T) {
	up, err := determineMovement(cell.Coord{Y: 0, Z: 0, X: 0}, cell.Coord{Y: 3, Z: 0, X: 0})
	if err != nil || up != UpVia {
		t.Fatalf("up-via: token=%v err=%v", up, err)
	}
	down, err := determineMovement(cell.Coord{Y: 3, Z: 0, X: 0}, cell.Coord{Y: 0, Z: 0, X: 0})
	if err != nil || down != DownVia {
		t.Fatalf("down-via: token=%v err=%v", down, err)
	}
	_, err = determineMovement(cell.Coord{Y: 0, Z: 0, X: 0}, cell.Coord{Y: 0, Z: 2, X: 0})
	if err == nil {
		t.Fatal("expected an error for a non-admissible step")
	}
}
