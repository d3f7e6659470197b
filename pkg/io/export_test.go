package io

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/sitegrid/pkg/compose"
	"github.com/matzehuels/sitegrid/pkg/errors"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

func TestWriteScheduleRoundTrip(t *testing.T) {
	in := wantInput()
	var buf bytes.Buffer
	if err := WriteSchedule(in, &buf); err != nil {
		t.Fatalf("WriteSchedule: %v", err)
	}
	got, err := ReadSchedule(&buf, FormatJSON)
	if err != nil {
		t.Fatalf("ReadSchedule: %v", err)
	}
	in.Gaps = schedule.Gaps{}
	if diff := cmp.Diff(in, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func buildLayout(t *testing.T) *compose.Layout {
	t.Helper()
	in := wantInput()
	in.Milestones = append(in.Milestones, schedule.Milestone{Name: "Later", Date: dec(20)})
	l, err := compose.Build(compose.Document{
		Range:      *in.Range,
		Milestones: in.Milestones,
		Tasks:      in.Tasks,
		Manpower:   in.Manpower,
	}, compose.DefaultSettings())
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestWriteLayout(t *testing.T) {
	l := buildLayout(t)
	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		t.Fatalf("WriteLayout: %v", err)
	}

	var got struct {
		Range struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"range"`
		Grid struct {
			Columns int `json:"columns"`
			Rows    int `json:"rows"`
		} `json:"grid"`
		Contractors []struct {
			Name       string `json:"name"`
			Color      string `json:"color"`
			BaseOffset int    `json:"base_offset"`
		} `json:"contractors"`
		Tasks []struct {
			Name       string `json:"name"`
			End        string `json:"end"`
			StackIndex int    `json:"stack_index"`
		} `json:"tasks"`
		Milestones []struct {
			Visible bool `json:"visible"`
		} `json:"milestones"`
		Manpower struct {
			Trades       []string             `json:"trades"`
			Series       map[string][]float64 `json:"series"`
			TotalManDays float64              `json:"total_man_days"`
			PeakDates    []string             `json:"peak_dates"`
		} `json:"manpower"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}

	if got.Range.Start != "2025-12-04" || got.Range.End != "2025-12-10" {
		t.Errorf("range = %+v", got.Range)
	}
	if got.Grid.Columns != 7 || got.Grid.Rows != 1 {
		t.Errorf("grid = %+v", got.Grid)
	}
	if len(got.Contractors) != 2 || got.Contractors[0].Name != "MediaPro" || got.Contractors[0].Color != "#e63946" {
		t.Errorf("contractors = %+v", got.Contractors)
	}
	if got.Contractors[1].BaseOffset != 1 {
		t.Errorf("Ocubo base offset = %d, want 1", got.Contractors[1].BaseOffset)
	}
	if len(got.Tasks) != 2 || got.Tasks[0].End != "2025-12-06" || got.Tasks[1].StackIndex != 1 {
		t.Errorf("tasks = %+v", got.Tasks)
	}
	if len(got.Milestones) != 2 || !got.Milestones[0].Visible || got.Milestones[1].Visible {
		t.Errorf("milestones = %+v", got.Milestones)
	}
	if diff := cmp.Diff([]string{"Riggers", "Electricians"}, got.Manpower.Trades); diff != "" {
		t.Errorf("trades (-want +got):\n%s", diff)
	}
	if len(got.Manpower.Series["Riggers"]) != 7 {
		t.Errorf("Riggers series length = %d, want 7", len(got.Manpower.Series["Riggers"]))
	}
	if got.Manpower.TotalManDays != 7.5 {
		t.Errorf("total man-days = %v, want 7.5", got.Manpower.TotalManDays)
	}
	if diff := cmp.Diff([]string{"2025-12-04"}, got.Manpower.PeakDates); diff != "" {
		t.Errorf("peak dates (-want +got):\n%s", diff)
	}
}

func TestExportLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	if err := ExportLayout(buildLayout(t), path); err != nil {
		t.Fatalf("ExportLayout: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"stack_index"`) {
		t.Error("exported file lacks task lanes")
	}
}

func TestExportScheduleReimports(t *testing.T) {
	in, err := ReadSchedule(strings.NewReader(jsonSchedule), FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "clean.json")
	if err := ExportSchedule(in, path); err != nil {
		t.Fatalf("ExportSchedule: %v", err)
	}
	back, err := ImportSchedule(path)
	if err != nil {
		t.Fatalf("ImportSchedule: %v", err)
	}
	if back.Gaps.Total() != 0 {
		t.Errorf("clean schedule still has gaps: %+v", back.Gaps)
	}
	if len(back.Tasks) != len(in.Tasks) || len(back.Milestones) != len(in.Milestones) {
		t.Errorf("reimported %d tasks, %d milestones", len(back.Tasks), len(back.Milestones))
	}
}

func TestExportScheduleBadPath(t *testing.T) {
	in := &schedule.Input{}
	err := ExportSchedule(in, filepath.Join(t.TempDir(), "missing", "out.json"))
	if !errors.Is(err, errors.ErrCodeOutputWrite) {
		t.Errorf("got %v, want OUTPUT_WRITE", err)
	}
}
