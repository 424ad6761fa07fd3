package asset

import "strings"

// Extension returns the lowercased text after the last '.' of url. It is
// empty when url is empty or its final path segment has no dot.
func Extension(url string) string {
	i := strings.LastIndexByte(url, '.')
	if i < 0 {
		return ""
	}
	ext := url[i+1:]
	if strings.IndexByte(ext, '/') >= 0 {
		return ""
	}
	return strings.ToLower(ext)
}

// FileName returns the text after the last '/' of url, or url itself when
// it has no slash.
func FileName(url string) string {
	return url[strings.LastIndexByte(url, '/')+1:]
}
