package io

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/sitegrid/pkg/errors"
	"github.com/matzehuels/sitegrid/pkg/schedule"
)

// ReadSchedule decodes a schedule in format f from r.
//
// Unusable records are skipped and counted in the returned input's Gaps.
// ReadSchedule returns an error only if the document cannot be decoded,
// is not an object, or carries a malformed or inverted start/end range.
// ReadSchedule does not close r.
func ReadSchedule(r io.Reader, f Format) (*schedule.Input, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read schedule")
	}

	var raw any
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		err = dec.Decode(&raw)
	case FormatTOML:
		var m map[string]any
		_, err = toml.Decode(string(data), &m)
		raw = m
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported schedule format %q", f)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s schedule", f)
	}

	doc, ok := asMap(normalize(raw))
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "schedule must be an object")
	}
	return decodeInput(doc)
}

// ImportSchedule reads the schedule file at path, picking the format from
// its extension.
func ImportSchedule(path string) (*schedule.Input, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "schedule %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer file.Close()
	return ReadSchedule(file, f)
}

func decodeInput(doc map[string]any) (*schedule.Input, error) {
	in := &schedule.Input{Manpower: schedule.NewManpower()}

	rng, err := decodeRange(doc)
	if err != nil {
		return nil, err
	}
	in.Range = rng

	for _, item := range asList(doc["milestones"]) {
		m, ok := decodeMilestone(item)
		if !ok {
			in.Gaps.Milestones++
			continue
		}
		in.Milestones = append(in.Milestones, m)
	}

	for _, item := range asList(doc["tasks"]) {
		t, ok := decodeTask(item)
		if !ok {
			in.Gaps.Tasks++
			continue
		}
		in.Tasks = append(in.Tasks, t)
	}

	for _, item := range asList(doc["manpower"]) {
		row, ok := asMap(item)
		if !ok {
			in.Gaps.Values++
			continue
		}
		trade, ok := asString(row["trade"])
		if !ok {
			in.Gaps.Values++
			continue
		}
		in.Manpower.AddTrade(trade)
		days, _ := asMap(row["days"])
		for key, val := range days {
			d, okDate := asDate(key)
			v, okVal := asFloat(val)
			if !okDate || !okVal || v < 0 {
				in.Gaps.Values++
				continue
			}
			in.Manpower.Add(trade, d, v)
		}
	}
	return in, nil
}

func decodeRange(doc map[string]any) (*schedule.DateRange, error) {
	rawStart, hasStart := doc["start"]
	rawEnd, hasEnd := doc["end"]
	if !hasStart && !hasEnd {
		return nil, nil
	}
	if !hasStart || !hasEnd {
		return nil, errors.New(errors.ErrCodeInvalidRange, "start and end must be given together")
	}
	start, ok := asDate(rawStart)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidRange, "invalid start date %v", rawStart)
	}
	end, ok := asDate(rawEnd)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidRange, "invalid end date %v", rawEnd)
	}
	rng, err := schedule.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return &rng, nil
}

func decodeMilestone(item any) (schedule.Milestone, bool) {
	m, ok := asMap(item)
	if !ok {
		return schedule.Milestone{}, false
	}
	name, okName := asString(m["name"])
	date, okDate := asDate(m["date"])
	if !okName || !okDate {
		return schedule.Milestone{}, false
	}
	return schedule.Milestone{Name: name, Date: date}, true
}

func decodeTask(item any) (schedule.Task, bool) {
	m, ok := asMap(item)
	if !ok {
		return schedule.Task{}, false
	}
	contractor, okContractor := asString(m["contractor"])
	start, okStart := asDate(m["start"])
	duration, okDuration := asCount(m["duration"])
	if !okContractor || !okStart || !okDuration {
		return schedule.Task{}, false
	}
	name, _ := asString(m["name"])
	return schedule.Task{Contractor: contractor, Name: name, Start: start, Duration: duration}, true
}
