package filefilter

// joinPath appends name to the slash separated prefix.
func joinPath(prefix string, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "/" + name
}
