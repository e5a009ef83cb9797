package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("scaffold").Funcs(template.FuncMap{
	"lower": lowerFirst,
	"list":  quoteList,
}).ParseFS(templateFS, "templates/*.tmpl"))

// ErrExists is returned by Generate when the target file is present and
// force is not set.
var ErrExists = errors.New("file already exists")

// FileName is the path, relative to the output directory, that Render's
// output belongs in.
func FileName(def Definition, kind Kind) string {
	return snakeCase(def.Name) + "_" + string(kind) + ".go"
}

// Render executes the template for kind and gofmts the result.
func Render(def Definition, kind Kind) ([]byte, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, string(kind)+".go.tmpl", def); err != nil {
		return nil, fmt.Errorf("render %s: %w", kind, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", kind, err)
	}
	return src, nil
}

// Generate renders kind into dir and returns the written path.
func Generate(def Definition, kind Kind, dir string, force bool) (string, error) {
	src, err := Render(def, kind)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, FileName(def, kind))
	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("%s: %w", path, ErrExists)
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", err
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return strings.Join(quoted, ", ")
}
