package blocks

import "testing"

func TestIDAndNameRoundTrip(t *testing.T) {
	for id, name := range Names {
		if name == "" {
			continue
		}
		if got := ID(name); got != id {
			t.Errorf("ID(%q) = %d, want %d", name, got, id)
		}
		if got := Name(id); got != name {
			t.Errorf("Name(%d) = %q, want %q", id, got, name)
		}
	}
}

func TestIDUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ID() did not panic on an unknown block name")
		}
	}()
	ID("not_a_real_block")
}

func TestNameOutOfRange(t *testing.T) {
	if got := Name(-1); got != "" {
		t.Errorf("Name(-1) = %q, want empty string", got)
	}
	if got := Name(len(Names) + 100); got != "" {
		t.Errorf("Name(out of range) = %q, want empty string", got)
	}
}

func TestRotateTorchFullTurnRoundTrips(t *testing.T) {
	for _, facing := range []int{TorchEast, TorchNorth, TorchWest, TorchSouth} {
		if got := RotateTorch(facing, 4); got != facing {
			t.Errorf("RotateTorch(%d, 4) = %d, want %d", facing, got, facing)
		}
	}
	if got := RotateTorch(TorchUp, 1); got != TorchUp {
		t.Errorf("RotateTorch(TorchUp, 1) = %d, want %d (unaffected by rotation)", got, TorchUp)
	}
}

func TestRotateTorchSequence(t *testing.T) {
	if got := RotateTorch(TorchEast, 1); got != TorchNorth {
		t.Errorf("RotateTorch(TorchEast, 1) = %d, want %d", got, TorchNorth)
	}
}

// RotateRepeater/RotateComparator must permute through all four facings
// under repeated application; a rotation table that returns the
// unrotated input would fail this.
func TestRotateRepeaterRoundTrips(t *testing.T) {
	for _, facing := range []int{FacingNorth, FacingEast, FacingSouth, FacingWest} {
		got := RotateRepeater(facing, 4)
		if got != facing {
			t.Errorf("RotateRepeater(%d, 4) = %d, want %d", facing, got, facing)
		}
		rotated := RotateRepeater(facing, 1)
		if rotated == facing {
			t.Errorf("RotateRepeater(%d, 1) = %d, should differ from the input facing", facing, rotated)
		}
	}
}

func TestRotateRepeaterPreservesDelayBits(t *testing.T) {
	const delayBits = 0xc // high 2 bits: delay ticks
	data := delayBits | FacingEast
	rotated := RotateRepeater(data, 1)
	if rotated&0xc != delayBits {
		t.Errorf("RotateRepeater(%d, 1) = %d, lost the delay bits", data, rotated)
	}
}

func TestRotateComparatorRoundTrips(t *testing.T) {
	for _, facing := range []int{FacingNorth, FacingEast, FacingSouth, FacingWest} {
		if got := RotateComparator(facing, 4); got != facing {
			t.Errorf("RotateComparator(%d, 4) = %d, want %d", facing, got, facing)
		}
	}
}

func TestRotateDataDispatchesByBlockName(t *testing.T) {
	torchID := ID("redstone_torch")
	if got := RotateData(torchID, TorchEast, 1); got != TorchNorth {
		t.Errorf("RotateData(torch, east, 1) = %d, want %d", got, TorchNorth)
	}

	repeaterID := ID("unpowered_repeater")
	rotated := RotateData(repeaterID, FacingEast, 1)
	if rotated == FacingEast {
		t.Errorf("RotateData(repeater, east, 1) = %d, should differ from the input facing", rotated)
	}

	stoneID := ID("stone")
	if got := RotateData(stoneID, 7, 1); got != 7 {
		t.Errorf("RotateData(stone, 7, 1) = %d, want 7 (no facing encoding, passes through)", got)
	}
}
