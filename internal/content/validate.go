package content

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	gojsonschema "github.com/xeipuuv/gojsonschema"
)

//go:embed dictionary.schema.json
var dictionarySchema []byte

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(dictionarySchema))
	})
	return schema, schemaErr
}

// Validate checks every registered dictionary and joins all problems into a
// single error.
func Validate() error {
	var errs []error
	for _, l := range Locales() {
		d, err := Resolve(l)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := d.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("locale %s: %w", l, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks d against the shared dictionary schema, then applies the
// checks a schema cannot express: unique ids and parseable URLs.
func (d *Dictionary) Validate() error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling dictionary schema: %w", err)
	}
	result, err := s.Validate(gojsonschema.NewGoLoader(d))
	if err != nil {
		return fmt.Errorf("validating dictionary: %w", err)
	}

	var errs []error
	for _, re := range result.Errors() {
		errs = append(errs, fmt.Errorf("%s: %s", re.Field(), re.Description()))
	}

	errs = append(errs, uniqueIDs("projects", len(d.Projects), func(i int) string { return d.Projects[i].ID })...)
	errs = append(errs, uniqueIDs("learningTools", len(d.LearningTools), func(i int) string { return d.LearningTools[i].ID })...)
	errs = append(errs, uniqueIDs("notes", len(d.Notes), func(i int) string { return d.Notes[i].ID })...)
	errs = append(errs, uniqueIDs("publications", len(d.Publications), func(i int) string { return d.Publications[i].ID })...)

	for i, p := range d.Projects {
		if !p.Status.Valid() {
			errs = append(errs, fmt.Errorf("projects.%d.status: invalid status %q", i, p.Status))
		}
		errs = appendURLErr(errs, fmt.Sprintf("projects.%d.githubUrl", i), p.GithubURL, true)
		errs = appendURLErr(errs, fmt.Sprintf("projects.%d.demoUrl", i), p.DemoURL, false)
	}
	for i, t := range d.LearningTools {
		errs = appendURLErr(errs, fmt.Sprintf("learningTools.%d.url", i), t.URL, true)
	}
	for i, n := range d.Notes {
		errs = appendURLErr(errs, fmt.Sprintf("notes.%d.link", i), n.Link, true)
	}
	for i, p := range d.Publications {
		if !p.Status.Valid() {
			errs = append(errs, fmt.Errorf("publications.%d.status: invalid status %q", i, p.Status))
		}
		errs = appendURLErr(errs, fmt.Sprintf("publications.%d.url", i), p.URL, false)
	}

	return errors.Join(errs...)
}

func uniqueIDs(list string, n int, id func(int) string) []error {
	var errs []error
	seen := make(map[string]int, n)
	for i := 0; i < n; i++ {
		v := id(i)
		if first, ok := seen[v]; ok {
			errs = append(errs, fmt.Errorf("%s.%d.id: duplicate id %q (first at %d)", list, i, v, first))
			continue
		}
		seen[v] = i
	}
	return errs
}

func appendURLErr(errs []error, field, raw string, required bool) []error {
	if strings.TrimSpace(raw) == "" {
		if required {
			errs = append(errs, fmt.Errorf("%s: url is required", field))
		}
		return errs
	}
	u, err := url.Parse(raw)
	if err != nil {
		return append(errs, fmt.Errorf("%s: %w", field, err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return append(errs, fmt.Errorf("%s: unsupported scheme %q", field, u.Scheme))
	}
	if u.Host == "" {
		return append(errs, fmt.Errorf("%s: missing host", field))
	}
	return errs
}
