package bagfmt

// PrettyOpts configures human-readable rendering of a bag.
type PrettyOpts struct {
	Color    bool
	Width    int    // максимальная ширина строки, 0 - не ограничено
	Template string // per-message format, empty means the bag default
	Counts   bool   // show per-key message counts in headers
}

// JSONOpts configures JSON output of a bag.
type JSONOpts struct {
	Indent   int    // spaces per level, 0 = compact
	Wrap     bool   // wrap the object in {"errors": ...}
	Max      int    // обрезка вывода, не Bag
	Template string // per-message format, empty means the bag default
}
