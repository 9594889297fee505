package train

// History records per-epoch losses.
//
// TestLoss is empty when training ran without a test set.
type History struct {
	TrainLoss []float64
	TestLoss  []float64
}

// Epochs returns the number of recorded epochs.
func (h *History) Epochs() int {
	return len(h.TrainLoss)
}

// InitialLoss returns the training loss of the first epoch.
func (h *History) InitialLoss() float64 {
	return h.TrainLoss[0]
}

// FinalLoss returns the training loss of the last epoch.
func (h *History) FinalLoss() float64 {
	return h.TrainLoss[len(h.TrainLoss)-1]
}

// Improved reports whether the final training loss is below the initial one.
func (h *History) Improved() bool {
	return h.Epochs() > 0 && h.FinalLoss() < h.InitialLoss()
}

// DecreasingFraction returns the share of epochs whose training loss is
// lower than the previous epoch's.
func (h *History) DecreasingFraction() float64 {
	if h.Epochs() < 2 {
		return 0
	}
	decreasing := 0
	for i := 1; i < len(h.TrainLoss); i++ {
		if h.TrainLoss[i] < h.TrainLoss[i-1] {
			decreasing++
		}
	}
	return float64(decreasing) / float64(len(h.TrainLoss)-1)
}
