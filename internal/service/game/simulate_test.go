package game

import (
	"testing"

	servModel "plinko_backend/internal/service/game/model"
)

func TestSimulateDrop(t *testing.T) {
	for i := 0; i < 1000; i++ {
		drop := simulateDrop()

		if drop.Bucket < 0 || drop.Bucket > servModel.TotalDrops {
			t.Fatalf("bucket %d out of range [0, %d]", drop.Bucket, servModel.TotalDrops)
		}

		if len(drop.Pattern) != servModel.TotalDrops {
			t.Fatalf("pattern length = %d, want %d", len(drop.Pattern), servModel.TotalDrops)
		}

		rights := 0
		for _, step := range drop.Pattern {
			switch step {
			case "R":
				rights++
			case "L":
			default:
				t.Fatalf("unexpected pattern step %q", step)
			}
		}
		if rights != drop.Bucket {
			t.Fatalf("bucket = %d, but pattern has %d rights", drop.Bucket, rights)
		}

		if drop.Multiplier != servModel.Multipliers[drop.Bucket] {
			t.Fatalf("multiplier = %v, want %v for bucket %d",
				drop.Multiplier, servModel.Multipliers[drop.Bucket], drop.Bucket)
		}

		found := false
		for _, p := range servModel.PointsTable[drop.Bucket] {
			if p == drop.Points {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("points %d not in table for bucket %d", drop.Points, drop.Bucket)
		}
	}
}

func TestMultipliersSymmetry(t *testing.T) {
	for b := 0; b <= servModel.TotalDrops; b++ {
		mirror := servModel.TotalDrops - b
		if servModel.Multipliers[b] != servModel.Multipliers[mirror] {
			t.Errorf("multiplier[%d] = %v, multiplier[%d] = %v, want equal",
				b, servModel.Multipliers[b], mirror, servModel.Multipliers[mirror])
		}
	}
}

func TestPointsTableNonEmpty(t *testing.T) {
	for b, points := range servModel.PointsTable {
		if len(points) == 0 {
			t.Errorf("bucket %d has no points variants", b)
		}
	}
}
