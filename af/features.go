package af

import (
	"slices"
	"sync"
)

var (
	featureMu sync.Mutex
	features  []string
)

// registerFeature records a feature group compiled into this binary.
func registerFeature(name string) {
	featureMu.Lock()
	defer featureMu.Unlock()
	if !slices.Contains(features, name) {
		features = append(features, name)
		slices.Sort(features)
	}
}

// EnabledFeatures lists the feature groups compiled in, sorted by name.
// A group is left out by building with the tag af_no_<name>.
func EnabledFeatures() []string {
	featureMu.Lock()
	defer featureMu.Unlock()
	return slices.Clone(features)
}

// HasFeature reports whether the named feature group was compiled in.
func HasFeature(name string) bool {
	featureMu.Lock()
	defer featureMu.Unlock()
	return slices.Contains(features, name)
}
