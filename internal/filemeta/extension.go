package filemeta

import "strings"

// ExtensionSet holds lower-cased extensions without the leading dot.
type ExtensionSet map[string]struct{}

// NewExtensionSet builds a set from extensions such as "JPG" or ".png".
func NewExtensionSet(exts ...string) ExtensionSet {
	set := make(ExtensionSet, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(ext, "."))
		if ext != "" {
			set[ext] = struct{}{}
		}
	}
	return set
}

// Contains reports whether ext is a member of the set. ext must already be lower-case.
func (s ExtensionSet) Contains(ext string) bool {
	_, ok := s[ext]
	return ok
}

// ExtensionOf returns the lower-cased text after the last "." in name.
// Names without a dot, or ending in one, have no extension.
func ExtensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 || i == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// IsOfType reports whether name has a non-empty extension contained in allowed.
func IsOfType(name string, allowed ExtensionSet) bool {
	ext := ExtensionOf(name)
	if ext == "" {
		return false
	}
	return allowed.Contains(ext)
}
