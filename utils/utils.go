package utils

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

var mappingSourceDir string

func init() {
	_, file, _, _ := runtime.Caller(0)
	// compatible solution to get the module source directory with various operating systems
	mappingSourceDir = sourceDir(file)
}

func sourceDir(file string) string {
	dir := filepath.Dir(file)
	dir = filepath.Dir(dir)

	s := filepath.Dir(dir)
	if filepath.Base(s) != "gorm.io" {
		s = dir
	}
	return filepath.ToSlash(s) + "/"
}

// FileWithLineNum return the file name and line number of the first caller outside this module
func FileWithLineNum() string {
	// the second caller usually from internal, so set i start from 2
	for i := 2; i < 15; i++ {
		_, file, line, ok := runtime.Caller(i)
		if ok && (!strings.HasPrefix(file, mappingSourceDir) || strings.HasSuffix(file, "_test.go")) {
			return file + ":" + strconv.FormatInt(int64(line), 10)
		}
	}

	return ""
}

// Contains reports whether elem is in elems
func Contains[T comparable](elems []T, elem T) bool {
	for _, e := range elems {
		if elem == e {
			return true
		}
	}
	return false
}

// AppendUnique appends the values missing from elems, keeping order
func AppendUnique[T comparable](elems []T, values ...T) []T {
	for _, value := range values {
		if !Contains(elems, value) {
			elems = append(elems, value)
		}
	}
	return elems
}

// ShortName returns the last segment of a qualified type name,
// separators are '.', '/' and '\'
func ShortName(name string) string {
	if idx := strings.LastIndexAny(name, `./\`); idx >= 0 {
		return name[idx+1:]
	}
	return name
}
