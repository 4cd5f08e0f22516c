package params

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestNewStoreDefaults(t *testing.T) {
	s := NewStore()

	for bank := range NumBanks {
		for i := range NumBands {
			got := s.BandSettings(i, bank)
			if got != DefaultBand(i) {
				t.Fatalf("bank %v band %d = %+v, want %+v", bank, i, got, DefaultBand(i))
			}
			if got.On {
				t.Fatalf("bank %v band %d enabled by default", bank, i)
			}
		}
	}

	if s.OutputGainDB() != 0 || s.StereoMode() != Stereo || s.EditTarget() != EditLink || s.Quality() != QualityStandard {
		t.Fatalf("unexpected globals: gain=%v mode=%v edit=%v quality=%v",
			s.OutputGainDB(), s.StereoMode(), s.EditTarget(), s.Quality())
	}

	if DefaultBand(0).Kind != HighPass || DefaultBand(NumBands-1).Kind != LowPass {
		t.Fatal("outer bands should default to high/low pass")
	}
}

func TestSettersClamp(t *testing.T) {
	s := NewStore()

	s.SetFrequency(0, BankA, 5)
	s.SetGain(0, BankA, 40)
	s.SetQ(0, BankA, 100)
	s.SetOutputGainDB(-60)
	s.SetSlope(0, BankA, Slope(12))
	s.SetType(0, BankA, FilterType(-3))

	b := s.Band(0, BankA)
	if b.FrequencyHz() != 20 || b.GainDB() != 24 || b.Q() != 18 {
		t.Fatalf("clamped band = %+v", SettingsOf(b))
	}
	if b.Slope() != Slope48dB || b.Type() != Peak {
		t.Fatalf("clamped enums = %v/%v", b.Slope(), b.Type())
	}
	if s.OutputGainDB() != -24 {
		t.Fatalf("OutputGainDB = %v, want -24", s.OutputGainDB())
	}
}

func TestBanksAreIndependent(t *testing.T) {
	s := NewStore()
	s.SetGain(3, BankB, 6)

	if s.Band(3, BankA).GainDB() != 0 {
		t.Fatal("bank B write leaked into bank A")
	}
	if s.Band(3, BankB).GainDB() != 6 {
		t.Fatal("bank B write lost")
	}
}

func TestBandViewIsLive(t *testing.T) {
	s := NewStore()
	v := s.Band(2, BankA)
	s.SetFrequency(2, BankA, 777)
	if v.FrequencyHz() != 777 {
		t.Fatalf("view FrequencyHz = %v, want 777", v.FrequencyHz())
	}
}

func TestSetAndGetByID(t *testing.T) {
	s := NewStore()

	tests := []struct {
		id    string
		value float64
		want  float64
	}{
		{"b1_enabled", 1, 1},
		{"b1_type", 4, 4},
		{"b2_freq", 440, 440},
		{"b3_gain", -7.5, -7.5},
		{"b4_q", 2.5, 2.5},
		{"b5_slope", 2.6, 3},
		{"b8_gain_b", 30, 24},
		{"b8_enabled_b", 0.2, 0},
		{IDOutputGain, 3, 3},
		{IDStereoMode, 1, float64(MidSide)},
		{IDEditTarget, 0, float64(EditA)},
		{IDQuality, 1, float64(QualityHigh)},
	}

	for _, tt := range tests {
		if err := s.Set(tt.id, tt.value); err != nil {
			t.Fatalf("Set(%q) error = %v", tt.id, err)
		}
		got, err := s.Get(tt.id)
		if err != nil {
			t.Fatalf("Get(%q) error = %v", tt.id, err)
		}
		if got != tt.want {
			t.Fatalf("Get(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}

	if s.Band(7, BankA).GainDB() != 0 {
		t.Fatal("b8_gain_b should only write bank B")
	}
}

func TestSetErrors(t *testing.T) {
	s := NewStore()

	for _, id := range []string{"", "b0_gain", "b9_gain", "b1_color", "out_gain_b"} {
		if err := s.Set(id, 1); !errors.Is(err, ErrUnknownParameter) {
			t.Fatalf("Set(%q) error = %v, want ErrUnknownParameter", id, err)
		}
	}

	if err := s.Set("b1_gain", math.NaN()); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Set(NaN) error = %v, want ErrInvalidValue", err)
	}
	if _, err := s.Get("nope"); !errors.Is(err, ErrUnknownParameter) {
		t.Fatalf("Get(nope) error = %v", err)
	}
}

func TestIDs(t *testing.T) {
	ids := IDs()
	want := 4 + int(NumBanks)*NumBands*int(fieldCount)
	if len(ids) != want {
		t.Fatalf("len(IDs()) = %d, want %d", len(ids), want)
	}

	seen := make(map[string]bool)
	s := NewStore()
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate ID %q", id)
		}
		seen[id] = true
		if _, err := s.Get(id); err != nil {
			t.Fatalf("Get(%q) error = %v", id, err)
		}
	}

	if BandID(0, BankA, FieldFrequency) != "b1_freq" || BandID(7, BankB, FieldSlope) != "b8_slope_b" {
		t.Fatalf("unexpected band IDs: %s %s", BandID(0, BankA, FieldFrequency), BandID(7, BankB, FieldSlope))
	}
}

func TestSetBandFieldThroughEditTarget(t *testing.T) {
	s := NewStore()

	if err := s.SetBandField(1, FieldGain, 4, EditB); err != nil {
		t.Fatal(err)
	}
	if s.Band(1, BankA).GainDB() != 0 || s.Band(1, BankB).GainDB() != 4 {
		t.Fatal("EditB should only write bank B")
	}

	if err := s.SetBandField(1, FieldGain, -2, EditLink); err != nil {
		t.Fatal(err)
	}
	if s.Band(1, BankA).GainDB() != -2 || s.Band(1, BankB).GainDB() != -2 {
		t.Fatal("EditLink should write both banks")
	}

	if err := s.SetBandField(8, FieldGain, 1, EditA); !errors.Is(err, ErrUnknownParameter) {
		t.Fatalf("out-of-range band error = %v", err)
	}
}

func TestResetBand(t *testing.T) {
	s := NewStore()
	s.SetBand(4, BankA, BandSettings{Kind: LowPass, Frequency: 100, Gain: 9, QFactor: 5, Steepness: Slope36dB})
	s.SetBand(4, BankB, BandSettings{Kind: LowPass, Frequency: 100, Gain: 9, QFactor: 5, Steepness: Slope36dB})

	s.ResetBand(4, EditA)

	want := DefaultBand(4)
	want.On = true
	if got := s.BandSettings(4, BankA); got != want {
		t.Fatalf("reset band = %+v, want %+v", got, want)
	}
	if s.BandSettings(4, BankB).Frequency != 100 {
		t.Fatal("EditA reset touched bank B")
	}
}

func TestConcurrentReadWrite(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := range 10000 {
			s.SetFrequency(i%NumBands, BankA, float64(20+i%1000))
			s.SetOutputGainDB(float64(i%48 - 24))
		}
	}()

	go func() {
		defer wg.Done()
		var v View = s
		for i := range 10000 {
			f := v.Band(i%NumBands, BankA).FrequencyHz()
			if f < 20 || f > 20000 {
				t.Errorf("torn or unclamped frequency %v", f)
				return
			}
			_ = v.OutputGainDB()
		}
	}()

	wg.Wait()
}

func TestBandReadZeroAlloc(t *testing.T) {
	s := NewStore()
	var v View = s

	allocs := testing.AllocsPerRun(100, func() {
		for i := range NumBands {
			b := v.Band(i, BankB)
			_ = b.Enabled()
			_ = b.FrequencyHz()
		}
		_ = v.OutputGainDB()
	})
	if allocs != 0 {
		t.Fatalf("View reads allocated %v times per run", allocs)
	}
}
