package definition

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/simonhull/wren/pkg/catalog"
	"github.com/simonhull/wren/pkg/logger"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultIgnoreDirs are directories skipped while scanning
var DefaultIgnoreDirs = []string{
	"node_modules", "vendor", ".git", ".svn", ".hg",
	"__pycache__", "dist", "build", "tmp",
}

// DefaultExtensions are the pattern script extensions Scan picks up.
var DefaultExtensions = []string{".py"}

// ScanOptions configures Scan
type ScanOptions struct {
	Name       string        // definition name (default: base name of root)
	Extensions []string      // file extensions to include (default: DefaultExtensions)
	IgnoreDirs []string      // directory names to skip (default: DefaultIgnoreDirs)
	Logger     logger.Logger // receives warnings for skipped directories
}

var titlePattern = regexp.MustCompile(`^The\s+(.+?)\s+Pattern\b`)

// Scan derives a definition from a directory laid out as
// <root>/<category>/<pattern file>. Every file found is registered as
// complete with its slash-separated path relative to root as reference.
// Directories that do not name a category are skipped with a warning, and
// files nested deeper than one level are ignored.
func Scan(root string, opts ScanOptions) (*Definition, error) {
	if len(opts.Extensions) == 0 {
		opts.Extensions = DefaultExtensions
	}
	if len(opts.IgnoreDirs) == 0 {
		opts.IgnoreDirs = DefaultIgnoreDirs
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}
	if opts.Name == "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolving scan root: %w", err)
		}
		opts.Name = filepath.Base(abs)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanning %s: not a directory", root)
	}

	found := make(map[catalog.Category][]Pattern)
	log := opts.Logger.WithFields(logger.F("root", root))

	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		depth := len(strings.Split(rel, string(filepath.Separator)))

		if strings.HasPrefix(d.Name(), ".") || (d.IsDir() && contains(opts.IgnoreDirs, d.Name())) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if depth > 1 {
				return filepath.SkipDir
			}
			if _, err := catalog.ParseCategory(d.Name()); err != nil {
				log.Warn("skipping directory: not a pattern category", logger.F("dir", d.Name()))
				return filepath.SkipDir
			}
			return nil
		}

		if depth != 2 || !contains(opts.Extensions, filepath.Ext(d.Name())) {
			return nil
		}

		category, err := catalog.ParseCategory(filepath.Base(filepath.Dir(path)))
		if err != nil {
			return nil
		}

		p, err := scanFile(path)
		if err != nil {
			return err
		}
		p.Ref = filepath.ToSlash(rel)
		found[category] = append(found[category], p)
		log.Debug("found pattern", logger.F("category", category), logger.F("name", p.Name))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	def := &Definition{APIVersion: APIVersion, Kind: Kind, Name: opts.Name}
	for _, category := range catalog.Categories() {
		if len(found[category]) == 0 {
			continue
		}
		def.Spec.Categories = append(def.Spec.Categories, CategoryBlock{
			Category: category.Slug(),
			Patterns: found[category],
		})
	}
	return def, nil
}

// scanFile reads a pattern script's leading docstring for its name and
// summary, falling back to the title-cased file stem.
func scanFile(path string) (Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("reading %s: %w", path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p := Pattern{
		Name:   cases.Title(language.English).String(strings.NewReplacer("_", " ", "-", " ").Replace(stem)),
		Status: catalog.StatusComplete.String(),
	}

	doc := docstring(data)
	for len(doc) > 0 && doc[0] == "" {
		doc = doc[1:]
	}
	if len(doc) == 0 {
		return p, nil
	}
	if m := titlePattern.FindStringSubmatch(doc[0]); m != nil {
		p.Name = m[1]
	}
	p.Summary = firstSentence(doc[1:])
	return p, nil
}

// docstring returns the lines of a leading triple-quoted block, trimmed.
func docstring(data []byte) []string {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	var quote string
	switch {
	case bytes.HasPrefix(trimmed, []byte(`"""`)):
		quote = `"""`
	case bytes.HasPrefix(trimmed, []byte(`'''`)):
		quote = `'''`
	default:
		return nil
	}

	body := string(trimmed[len(quote):])
	if end := strings.Index(body, quote); end >= 0 {
		body = body[:end]
	}

	var lines []string
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	return lines
}

// firstSentence joins the first prose paragraph and cuts it after the
// first full stop. A leading "Notes:" label is dropped.
func firstSentence(lines []string) string {
	var para []string
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimPrefix(line, "Notes:"))
		if line == "" {
			if len(para) > 0 {
				break
			}
			continue
		}
		para = append(para, line)
	}

	text := strings.Join(para, " ")
	if i := strings.Index(text, ". "); i >= 0 {
		text = text[:i+1]
	}
	return text
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
