package observability

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestMetricsTextfile(t *testing.T) {
	ctx := context.Background()
	m := NewMetrics()

	m.OnLoadComplete(ctx, "plan.yaml", 42, 3, 10*time.Millisecond, nil)
	m.OnLayoutStart(ctx, 28, 40)
	m.OnLayoutComplete(ctx, 6, time.Millisecond, nil)
	m.OnRenderComplete(ctx, []string{"pdf"}, time.Second, errors.New("rsvg failed"))
	m.OnArtifact(ctx, "svg", 2048)
	m.OnOpen(ctx, "plan.pdf", errors.New("no viewer"))

	path := filepath.Join(t.TempDir(), "sitegrid.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)

	for _, want := range []string{
		"sitegrid_schedule_records 42",
		"sitegrid_schedule_gaps 3",
		"sitegrid_layout_days 28",
		"sitegrid_layout_lanes 6",
		`sitegrid_stage_errors_total{stage="render"} 1`,
		`sitegrid_stage_duration_seconds_count{stage="load"} 1`,
		`sitegrid_artifact_bytes{format="svg"} 2048`,
		`sitegrid_viewer_opens_total{ok="false"} 1`,
		"sitegrid_last_success_timestamp_seconds 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("textfile missing %q", want)
		}
	}
}

func TestMetricsFailedLoadKeepsGauges(t *testing.T) {
	ctx := context.Background()
	m := NewMetrics()
	m.OnLoadComplete(ctx, "a.yaml", 10, 1, time.Millisecond, nil)
	m.OnLoadComplete(ctx, "b.yaml", 0, 0, time.Millisecond, errors.New("boom"))

	path := filepath.Join(t.TempDir(), "m.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "sitegrid_schedule_records 10") {
		t.Error("failed load overwrote record gauge")
	}
}
