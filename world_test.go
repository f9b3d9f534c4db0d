package driftspace

import (
	"math"
	"testing"
)

func TestNewWorldIsDeterministic(t *testing.T) {
	a := NewWorld(42)
	b := NewWorld(42)

	if a.ObjectCount() != b.ObjectCount() {
		t.Fatalf("object counts differ: %d vs %d", a.ObjectCount(), b.ObjectCount())
	}
	if len(a.Anomalies()) != len(b.Anomalies()) {
		t.Fatalf("anomaly counts differ")
	}
	for i := range a.Anomalies() {
		pa, pb := a.Anomalies()[i], b.Anomalies()[i]
		if !almostEqual(pa.X, pb.X) || !almostEqual(pa.Y, pb.Y) || !almostEqual(pa.Z, pb.Z) {
			t.Errorf("anomaly %d differs between same-seed worlds", i)
		}
	}
}

func TestWorldComposition(t *testing.T) {
	w := NewWorld(7)

	if len(w.Anomalies()) != anomalyCount {
		t.Errorf("anomaly count = %d, want %d", len(w.Anomalies()), anomalyCount)
	}
	expectedObjects := islandCount*(1+rocksPerIsland) + anomalyCount + teleporterPair*2
	if w.ObjectCount() != expectedObjects {
		t.Errorf("object count = %d, want %d", w.ObjectCount(), expectedObjects)
	}
	if w.starfield.StarCount() != starCount {
		t.Errorf("star count = %d, want %d", w.starfield.StarCount(), starCount)
	}
}

func TestAnomalyPositionsImmutableAcrossUpdates(t *testing.T) {
	w := NewWorld(7)
	before := make([]Vector3, len(w.Anomalies()))
	for i, p := range w.Anomalies() {
		before[i] = *p
	}

	for frame := 0; frame < 120; frame++ {
		w.Update(1.0/60, 0.5)
	}

	for i, p := range w.Anomalies() {
		if !almostEqual(p.X, before[i].X) || !almostEqual(p.Y, before[i].Y) || !almostEqual(p.Z, before[i].Z) {
			t.Errorf("anomaly %d moved after updates", i)
		}
	}
}

func TestPulseLightFormula(t *testing.T) {
	l := NewPulseLight(0.9, 0.6)

	l.Update(0.5, 1.0)
	want := 0.9 + 0.6*1.0 + 0.5*math.Sin(3*0.5)
	if !almostEqual(l.Level(), want) {
		t.Errorf("level = %v, want %v", l.Level(), want)
	}

	l.Update(0.5, 0)
	want = 0.9 + 0.5*math.Sin(3*1.0)
	if !almostEqual(l.Level(), want) {
		t.Errorf("level after second update = %v, want %v", l.Level(), want)
	}
}

func TestStarfieldRotatesOnItsOwnRate(t *testing.T) {
	w := NewWorld(7)
	before := w.starfield.angle
	w.Update(1.0, 0)
	if !almostEqual(w.starfield.angle-before, starSpinRate) {
		t.Errorf("starfield advanced %v, want %v", w.starfield.angle-before, starSpinRate)
	}
}
