package classify

import (
	"math"

	"github.com/dshills/strokemap/internal/input/gesture"
)

// DefaultNoiseRatio is the fraction of the total path length below which a
// segment counts as wobble.
const DefaultNoiseRatio = 0.01

// Classifier converts a trajectory into a combo. Implementations never fail;
// unrecognizable input yields the empty combo.
type Classifier interface {
	Classify(traj Trajectory) gesture.Combo
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(traj Trajectory) gesture.Combo

// Classify calls f(traj).
func (f ClassifierFunc) Classify(traj Trajectory) gesture.Combo {
	return f(traj)
}

// bucketDirections maps a quantized angle of atan2(dy, dx) to a direction.
// Y grows downward, so a positive angle points down the screen.
var bucketDirections = [4]gesture.Direction{
	0: gesture.Right,
	1: gesture.Down,
	2: gesture.Left,
	3: gesture.Up,
}

// DiffClassifier classifies by the direction of consecutive displacements.
type DiffClassifier struct {
	// NoiseRatio is the wobble threshold as a fraction of total path length.
	// Zero means DefaultNoiseRatio.
	NoiseRatio float64
}

// NewDiffClassifier returns a classifier with the given noise ratio.
func NewDiffClassifier(noiseRatio float64) *DiffClassifier {
	return &DiffClassifier{NoiseRatio: noiseRatio}
}

// Classify implements Classifier.
func (c *DiffClassifier) Classify(traj Trajectory) gesture.Combo {
	if len(traj) < 2 {
		return gesture.Empty
	}

	kept := c.filter(traj)
	if len(kept) < 2 {
		return gesture.Empty
	}

	dirs := make([]gesture.Direction, 0, 4)
	last := -1
	for i := 1; i < len(kept); i++ {
		b := bucket(kept[i].Sub(kept[i-1]))
		if b == last {
			continue
		}
		if len(dirs) == gesture.MaxLen {
			// Too many strokes to be a deliberate gesture.
			return gesture.Empty
		}
		dirs = append(dirs, bucketDirections[b])
		last = b
	}

	combo, err := gesture.New(dirs...)
	if err != nil {
		return gesture.Empty
	}
	return combo
}

// filter drops every point reached by a segment shorter than the noise
// threshold. The first point is always kept.
func (c *DiffClassifier) filter(traj Trajectory) Trajectory {
	ratio := c.NoiseRatio
	if ratio <= 0 {
		ratio = DefaultNoiseRatio
	}

	lengths := make([]float64, len(traj)-1)
	var total float64
	for i := 1; i < len(traj); i++ {
		lengths[i-1] = traj[i].Sub(traj[i-1]).Len()
		total += lengths[i-1]
	}
	if total == 0 {
		return nil
	}

	threshold := total * ratio
	kept := make(Trajectory, 0, len(traj))
	kept = append(kept, traj[0])
	for i := 1; i < len(traj); i++ {
		if lengths[i-1] < threshold {
			continue
		}
		kept = append(kept, traj[i])
	}
	return kept
}

// bucket quantizes a displacement into 0..3, with boundaries on the diagonals.
func bucket(d Point) int {
	angle := math.Atan2(d.Y, d.X)
	quarter := math.Pi / 2
	b := int(math.Floor((angle + quarter/2) / quarter))
	return ((b % 4) + 4) % 4
}

// Default is a DiffClassifier with the default noise ratio.
var Default Classifier = NewDiffClassifier(DefaultNoiseRatio)
