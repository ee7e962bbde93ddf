package render

import (
	"fmt"
	"strings"

	"github.com/vk/hepnos-wizard/internal/hepnos"
)

// MkdirStatements returns one Jx9 mkdir call per growing prefix of path, so
// "/data/hepnos" yields mkdir("/data") then mkdir("/data/hepnos"). A leading
// separator is kept; empty segments are skipped.
func MkdirStatements(path string) []string {
	var (
		stmts   []string
		current string
	)
	if strings.HasPrefix(path, "/") {
		current = "/"
	}
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		if current == "" || current == "/" {
			current += part
		} else {
			current += "/" + part
		}
		stmts = append(stmts, fmt.Sprintf("mkdir(%q);", current))
	}
	return stmts
}

// Jx9 renders doc as a Jx9 script returning the configuration.
func Jx9(doc *hepnos.Document, pathPrefix string) (string, error) {
	js, err := JSON(doc)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, stmt := range MkdirStatements(pathPrefix) {
		sb.WriteString(stmt)
		sb.WriteByte('\n')
	}
	sb.WriteString("$config = ")
	sb.WriteString(js)
	sb.WriteString(";\nreturn $config;\n")
	return sb.String(), nil
}
