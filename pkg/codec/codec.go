// Package codec encodes plants and their care history to the line-oriented
// garden file format:
//
//	PLANT|id|name|species|planted|pot_size_cm|sunlight|watering|fertilizer
//	EVENT|type|date|notes
//
// EVENT lines belong to the nearest preceding PLANT line. Fields are not
// escaped, so a value containing the delimiter or a line break corrupts its
// record on the next read; a line break can start a new EVENT or PLANT record.
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"garden/entities"
)

const (
	Delim       = "|"
	PlantPrefix = "PLANT" + Delim
	EventPrefix = "EVENT" + Delim
)

// ParseIntOr parses a decimal integer, returning def for anything else.
func ParseIntOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func EncodeEvent(e entities.CareEvent) string {
	return EventPrefix + e.Type + Delim + e.Date + Delim + e.Notes
}

// DecodeEvent decodes an EVENT line. Notes take the rest of the line and may
// contain the delimiter.
func DecodeEvent(line string) entities.CareEvent {
	parts := strings.SplitN(line, Delim, 4)
	return entities.CareEvent{
		Type:  field(parts, 1),
		Date:  field(parts, 2),
		Notes: field(parts, 3),
	}
}

func EncodeSchedule(s entities.Schedule) string {
	return strconv.Itoa(s.IntervalDays)
}

// DecodeSchedule never fails; malformed input is a manual (0) schedule.
func DecodeSchedule(s string) entities.Schedule {
	return entities.Schedule{IntervalDays: ParseIntOr(s, 0)}
}

// EncodePlant encodes the PLANT header line only. History lines are written
// by EncodeRecord.
func EncodePlant(p entities.Plant) string {
	return strings.Join([]string{
		"PLANT",
		strconv.Itoa(p.ID),
		p.Name,
		p.Species,
		p.Planted,
		strconv.Itoa(p.PotSizeCM),
		p.Sunlight,
		EncodeSchedule(p.Watering),
		EncodeSchedule(p.Fertilizer),
	}, Delim)
}

// EncodeRecord returns the plant line followed by one line per history event.
func EncodeRecord(p entities.Plant) []string {
	lines := make([]string, 0, 1+len(p.History))
	lines = append(lines, EncodePlant(p))
	for _, e := range p.History {
		lines = append(lines, EncodeEvent(e))
	}
	return lines
}

// DecodePlant decodes the PLANT line at lines[at] and every EVENT line
// directly after it. It returns the plant and the index of the first line it
// did not consume.
func DecodePlant(lines []string, at int) (entities.Plant, int) {
	parts := strings.Split(lines[at], Delim)
	p := entities.Plant{
		ID:         ParseIntOr(field(parts, 1), 0),
		Name:       field(parts, 2),
		Species:    field(parts, 3),
		Planted:    field(parts, 4),
		PotSizeCM:  ParseIntOr(field(parts, 5), 0),
		Sunlight:   field(parts, 6),
		Watering:   DecodeSchedule(field(parts, 7)),
		Fertilizer: DecodeSchedule(field(parts, 8)),
	}
	next := at + 1
	for next < len(lines) && strings.HasPrefix(lines[next], EventPrefix) {
		p.History = append(p.History, DecodeEvent(lines[next]))
		next++
	}
	return p, next
}

// Decode turns cleaned lines into plants. Lines that do not start a PLANT
// record are skipped, including EVENT lines with no owning plant.
func Decode(lines []string) []entities.Plant {
	var plants []entities.Plant
	for i := 0; i < len(lines); {
		if !strings.HasPrefix(lines[i], PlantPrefix) {
			i++
			continue
		}
		var p entities.Plant
		p, i = DecodePlant(lines, i)
		plants = append(plants, p)
	}
	return plants
}

// ReadLines reads r fully, dropping a trailing carriage return from each line
// and discarding blank lines. Lines have no length limit.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read lines: %w", err)
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			return lines, nil
		}
	}
}

func Read(r io.Reader) ([]entities.Plant, error) {
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return Decode(lines), nil
}

// Write encodes every plant, each followed by its history, in order.
func Write(w io.Writer, plants []entities.Plant) error {
	bw := bufio.NewWriter(w)
	for _, p := range plants {
		for _, line := range EncodeRecord(p) {
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return fmt.Errorf("write plant %d: %w", p.ID, err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write: flush: %w", err)
	}
	return nil
}

func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}
