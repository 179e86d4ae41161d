package replays

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"request-metrics/internal/ingestors"
	"request-metrics/internal/models"

	"gopkg.in/yaml.v3"
)

// Fixture is a named list of events to replay in file order.
type Fixture struct {
	Name   string
	Events []*models.Event
}

type fixtureFile struct {
	Name   string         `yaml:"name"`
	Events []fixtureEvent `yaml:"events"`
}

type fixtureEvent struct {
	ID             int64  `yaml:"id"`
	Timestamp      string `yaml:"timestamp"`
	LatencyMs      *int64 `yaml:"latency_ms,omitempty"`
	ResponseTimeMs *int64 `yaml:"response_time_ms,omitempty"`
	StatusCode     int    `yaml:"status_code"`
	Region         string `yaml:"region"`
}

func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture %q: %w", path, err)
	}
	defer f.Close()

	fixture, err := DecodeFixture(f)
	if err != nil {
		return nil, fmt.Errorf("fixture %q: %w", path, err)
	}
	return fixture, nil
}

// DecodeFixture reads a YAML fixture. Unknown keys are rejected; timestamps and regions are
// normalized the same way as events posted over HTTP.
func DecodeFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file fixtureFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty fixture")
		}
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	fixture := &Fixture{Name: file.Name, Events: make([]*models.Event, 0, len(file.Events))}
	for i, fe := range file.Events {
		event, err := fe.toEvent()
		if err != nil {
			return nil, fmt.Errorf("event at index %d: %w", i, err)
		}
		fixture.Events = append(fixture.Events, event)
	}
	return fixture, nil
}

// EncodeFixture writes fixture in the format DecodeFixture reads.
func EncodeFixture(w io.Writer, fixture *Fixture) error {
	file := fixtureFile{Name: fixture.Name, Events: make([]fixtureEvent, 0, len(fixture.Events))}
	for _, e := range fixture.Events {
		latency := e.LatencyMs
		file.Events = append(file.Events, fixtureEvent{
			ID:         e.ID,
			Timestamp:  e.Timestamp.UTC().Format(time.RFC3339Nano),
			LatencyMs:  &latency,
			StatusCode: e.StatusCode,
			Region:     e.Region,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&file); err != nil {
		return fmt.Errorf("failed to encode fixture: %w", err)
	}
	return enc.Close()
}

func (fe fixtureEvent) toEvent() (*models.Event, error) {
	latency := fe.LatencyMs
	if latency == nil {
		latency = fe.ResponseTimeMs
	}
	if latency == nil {
		return nil, errors.New("missing latency_ms")
	}

	ts, err := ingestors.ParseTimestamp(fe.Timestamp)
	if err != nil {
		return nil, err
	}

	return &models.Event{
		ID:         fe.ID,
		Timestamp:  ts,
		LatencyMs:  *latency,
		StatusCode: fe.StatusCode,
		Region:     ingestors.NormalizeRegion(fe.Region),
	}, nil
}
