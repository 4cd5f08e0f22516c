package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-eq/eq/params"
)

// parseBand parses type:freq[:gain[:q[:slope]]]. Empty fields keep the
// defaults: 0 dB, Q 0.707, 12 dB/oct.
func parseBand(s string) (params.BandSettings, error) {
	fields := strings.Split(s, ":")
	if len(fields) < 2 || len(fields) > 5 {
		return params.BandSettings{}, fmt.Errorf("want type:freq[:gain[:q[:slope]]], got %q", s)
	}

	kind, err := params.ParseFilterType(fields[0])
	if err != nil {
		return params.BandSettings{}, err
	}

	b := params.BandSettings{
		On:        true,
		Kind:      kind,
		Gain:      params.GainRange.Default,
		QFactor:   params.QRange.Default,
		Steepness: params.Slope12dB,
	}

	values := []*float64{&b.Frequency, &b.Gain, &b.QFactor}
	names := []string{"frequency", "gain", "q"}
	for i, dst := range values {
		if i+1 >= len(fields) || fields[i+1] == "" {
			if i == 0 {
				return params.BandSettings{}, fmt.Errorf("missing frequency in %q", s)
			}
			continue
		}

		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return params.BandSettings{}, fmt.Errorf("invalid %s %q: %w", names[i], fields[i+1], err)
		}
		*dst = v
	}

	if len(fields) == 5 && fields[4] != "" {
		db, err := strconv.Atoi(strings.TrimSuffix(fields[4], "dB"))
		if err != nil {
			return params.BandSettings{}, fmt.Errorf("invalid slope %q: %w", fields[4], err)
		}
		if b.Steepness, err = params.SlopeFromDBPerOctave(db); err != nil {
			return params.BandSettings{}, err
		}
	}

	return b, nil
}
