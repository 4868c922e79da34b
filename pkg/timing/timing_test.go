package timing

import (
	"testing"

	"github.com/qmn/pershing/pkg/config"
	"github.com/qmn/pershing/pkg/extractor"
)

func TestComputeNetDelayCountsOnlyRepeatersAndVias(t *testing.T) {
	tm := New(config.DefaultTimingConfig())
	seg := extractor.ExtractedSegment{
		{Token: extractor.Wire},
		{Token: extractor.Repeater},
		{Token: extractor.Wire},
		{Token: extractor.UpVia},
		{Token: extractor.DownVia},
	}
	got := tm.ComputeNetDelay(seg)
	want := 1 + 2 + 2
	if got != want {
		t.Fatalf("ComputeNetDelay = %d, want %d", got, want)
	}
}
