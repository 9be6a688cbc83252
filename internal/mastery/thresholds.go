package mastery

// The weak-entry and mastery thresholds are deliberately independent
// constants, not derived from each other. A topic enters targeted
// practice when a completed session scores below WeakEntryThreshold,
// and only graduates out once the blended average reaches
// MasteryThreshold.
const (
	// WeakEntryThreshold is the immediate session score below which a
	// topic is flagged for targeted practice.
	WeakEntryThreshold = 70

	// MasteryThreshold is the blended average at or above which a topic
	// counts as mastered and leaves the weak set.
	MasteryThreshold = 85
)
