// Package fileutil reads source files the way the rest of celes
// expects to consume them: UTF-8 text with any leading byte-order mark
// stripped, since a config file saved by a BOM-happy editor shouldn't
// fail to parse over three invisible bytes.
package fileutil

import "os"

const bom = "\xef\xbb\xbf"

// ReadUTF8File reads path and returns its contents as a string with
// any leading UTF-8 BOM removed. A missing file returns the
// underlying *os.PathError, which wraps os.ErrNotExist.
func ReadUTF8File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	s := string(data)
	if len(s) >= len(bom) && s[:len(bom)] == bom {
		s = s[len(bom):]
	}
	return s, nil
}
