package models

import "sort"

// Clone returns a deep copy of the settings document so a working copy and
// its saved baseline never share map storage.
func (s Settings) Clone() Settings {
	out := s
	if s.MessageExtensions != nil {
		out.MessageExtensions = make(map[string]int, len(s.MessageExtensions))
		for k, v := range s.MessageExtensions {
			out.MessageExtensions[k] = v
		}
	}
	if s.LandmarkSettings != nil {
		out.LandmarkSettings = make(map[string]Landmark, len(s.LandmarkSettings))
		for k, v := range s.LandmarkSettings {
			out.LandmarkSettings[k] = v
		}
	}
	if s.DetectionObjects != nil {
		out.DetectionObjects = make(map[string]DetectionObject, len(s.DetectionObjects))
		for k, v := range s.DetectionObjects {
			out.DetectionObjects[k] = v
		}
	}
	return out
}

// ExtensionKeys returns the status labels in sorted order for deterministic
// display and iteration.
func (s Settings) ExtensionKeys() []string {
	return sortedKeys(s.MessageExtensions)
}

// LandmarkKeys returns the landmark keys in sorted order.
func (s Settings) LandmarkKeys() []string {
	return sortedKeys(s.LandmarkSettings)
}

// ObjectKeys returns the detection object class keys in sorted order.
func (s Settings) ObjectKeys() []string {
	return sortedKeys(s.DetectionObjects)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
