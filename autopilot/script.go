package autopilot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lixenwraith/mazechase/core"
)

// Segment is one straight run of scripted motion
type Segment struct {
	Direction     core.Direction
	Stop          int  // offset at which the segment completes
	Interruptable bool // an interrupt request skips to the next group
	Reveal        bool // owner turns visible-alive when this segment starts
}

// Script is an ordered list of segment groups
type Script [][]Segment

// Sentinel errors
var (
	ErrEmptyScript = errors.New("script has no groups")
	ErrEmptyGroup  = errors.New("script group has no segments")
)

// Parse reads the compact script literal
//
//	group  := segment { "," segment }
//	script := group { "|" group }
//	segment := direction stop [ "~" ] [ "+" ]
//
// "~" marks an interruptable segment, "+" a reveal segment
// Example: "up 8~, down 16~, up 8~ | right 32 | up 47"
func Parse(literal string) (Script, error) {
	if strings.TrimSpace(literal) == "" {
		return nil, ErrEmptyScript
	}

	var script Script
	for gi, rawGroup := range strings.Split(literal, "|") {
		var group []Segment
		for si, rawSeg := range strings.Split(rawGroup, ",") {
			rawSeg = strings.TrimSpace(rawSeg)
			if rawSeg == "" {
				return nil, fmt.Errorf("group %d: %w", gi, ErrEmptyGroup)
			}
			seg, err := parseSegment(rawSeg)
			if err != nil {
				return nil, fmt.Errorf("group %d segment %d: %w", gi, si, err)
			}
			group = append(group, seg)
		}
		script = append(script, group)
	}
	return script, nil
}

// MustParse panics on a malformed literal; scripts are compiled in so this is a startup failure
func MustParse(literal string) Script {
	s, err := Parse(literal)
	if err != nil {
		panic(fmt.Sprintf("autopilot: invalid script %q: %v", literal, err))
	}
	return s
}

func parseSegment(raw string) (Segment, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 {
		return Segment{}, fmt.Errorf("expected \"direction stop\", got %q", raw)
	}

	dir, ok := core.ParseDirection(fields[0])
	if !ok {
		return Segment{}, fmt.Errorf("unknown direction %q", fields[0])
	}

	seg := Segment{Direction: dir}
	stop := strings.TrimRight(fields[1], "~+")
	flags := fields[1][len(stop):]
	seg.Interruptable = strings.Contains(flags, "~")
	seg.Reveal = strings.Contains(flags, "+")

	n, err := strconv.Atoi(stop)
	if err != nil {
		return Segment{}, fmt.Errorf("invalid stop offset %q: %w", fields[1], err)
	}
	if n < 0 {
		return Segment{}, fmt.Errorf("negative stop offset %d", n)
	}
	seg.Stop = n
	return seg, nil
}

// Sum returns the displacement of running every segment to completion once
func (s Script) Sum() core.Point {
	var p core.Point
	for _, group := range s {
		for _, seg := range group {
			p = p.Add(seg.Direction.Vector().Scale(seg.Stop))
		}
	}
	return p
}
