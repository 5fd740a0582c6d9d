package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/xeipuuv/gojsonschema"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{"", English, false},
		{"en", English, false},
		{"ZH", Chinese, false},
		{" zh ", Chinese, false},
		{"fr", "", true},
		{"zh-TW", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLocale(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownLocale) {
				t.Errorf("ParseLocale(%q): expected ErrUnknownLocale, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLocale(%q): unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLocale(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveDefaultsToEnglish(t *testing.T) {
	d, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if d.Locale != English {
		t.Errorf("expected default dictionary %q, got %q", English, d.Locale)
	}
	if d.Navigation.Projects != "Repositories" {
		t.Errorf("expected English nav label, got %q", d.Navigation.Projects)
	}
}

func TestResolveUnknownLocale(t *testing.T) {
	if _, err := Resolve(Locale("de")); !errors.Is(err, ErrUnknownLocale) {
		t.Fatalf("expected ErrUnknownLocale, got %v", err)
	}
}

func TestToggleTwiceReturnsOriginalDictionary(t *testing.T) {
	for _, l := range Locales() {
		before, _ := Resolve(l)
		after, _ := Resolve(l.Toggle().Toggle())
		if before != after {
			t.Errorf("toggling %q twice resolved a different dictionary", l)
		}
		if l.Toggle() == l {
			t.Errorf("toggle of %q did not change locale", l)
		}
	}
}

func TestLocaleTag(t *testing.T) {
	if got := English.Tag().String(); got != "en" {
		t.Errorf("English tag = %q", got)
	}
	if got := Chinese.Tag().String(); got != "zh-Hans" {
		t.Errorf("Chinese tag = %q", got)
	}
}

func TestBundledDictionariesAreValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("bundled content failed validation:\n%v", err)
	}
}

func TestDictionariesHaveSameLists(t *testing.T) {
	a, b := &en, &zh
	if len(a.Projects) != len(b.Projects) || len(a.LearningTools) != len(b.LearningTools) ||
		len(a.Notes) != len(b.Notes) || len(a.Publications) != len(b.Publications) ||
		len(a.PersonalInfo.Bio) != len(b.PersonalInfo.Bio) {
		t.Fatalf("en and zh dictionaries have diverging list lengths")
	}
	for i := range a.Projects {
		if a.Projects[i].ID != b.Projects[i].ID {
			t.Errorf("projects[%d]: id %q vs %q", i, a.Projects[i].ID, b.Projects[i].ID)
		}
		if a.Projects[i].Status != b.Projects[i].Status {
			t.Errorf("projects[%d]: status differs between locales", i)
		}
	}
	for i := range a.Notes {
		if a.Notes[i].ID != b.Notes[i].ID || a.Notes[i].Date != b.Notes[i].Date {
			t.Errorf("notes[%d]: id/date differ between locales", i)
		}
	}
	for i := range a.Publications {
		if a.Publications[i].URL != b.Publications[i].URL {
			t.Errorf("publications[%d]: url differs between locales", i)
		}
	}
}

// clone copies en deeply enough that tests can mutate lists.
func clone() Dictionary {
	d := en
	d.Projects = append([]Project(nil), en.Projects...)
	d.Notes = append([]Note(nil), en.Notes...)
	d.Publications = append([]Publication(nil), en.Publications...)
	d.LearningTools = append([]LearningTool(nil), en.LearningTools...)
	return d
}

func TestValidateRejectsEmptyLabel(t *testing.T) {
	d := clone()
	d.Navigation.Notes = ""
	err := d.Validate()
	if err == nil {
		t.Fatal("expected error for empty navigation label")
	}
	if !strings.Contains(err.Error(), "notes") {
		t.Errorf("error should name the field, got: %v", err)
	}
}

func TestValidateRejectsWhitespaceTagline(t *testing.T) {
	d := clone()
	d.PersonalInfo.Tagline = "   "
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for blank tagline")
	}
}

func TestValidateRejectsUnknownProjectStatus(t *testing.T) {
	d := clone()
	d.Projects[0].Status = "Abandoned"
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for unknown project status")
	}
}

func TestValidateRejectsUnknownPublicationStatus(t *testing.T) {
	d := clone()
	d.Publications[0].Status = "Rejected"
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for unknown publication status")
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	d := clone()
	d.Notes[1].ID = d.Notes[0].ID
	err := d.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestValidateRejectsBadURL(t *testing.T) {
	d := clone()
	d.LearningTools[0].URL = "ftp://example.com/tool"
	if err := d.Validate(); err == nil {
		t.Fatal("expected error for non-http url")
	}
}

func TestSchemaAgreesWithURLCheck(t *testing.T) {
	s, err := compiledSchema()
	if err != nil {
		t.Fatal(err)
	}
	for _, link := range []string{"#", "#notes", "/notes/seurat", "https://", "ftp://example.com"} {
		d := clone()
		d.Notes[0].Link = link
		result, err := s.Validate(gojsonschema.NewGoLoader(&d))
		if err != nil {
			t.Fatal(err)
		}
		if result.Valid() {
			t.Errorf("schema accepted note link %q", link)
		}
		if err := d.Validate(); err == nil {
			t.Errorf("Validate accepted note link %q", link)
		}
	}

	d := clone()
	d.Notes[0].Link = "http://localhost:8080/notes"
	result, err := s.Validate(gojsonschema.NewGoLoader(&d))
	if err != nil {
		t.Fatal(err)
	}
	if !result.Valid() {
		t.Errorf("schema rejected a host url: %v", result.Errors())
	}
}

func TestValidateAllowsMissingOptionalURLs(t *testing.T) {
	d := clone()
	d.Projects[0].DemoURL = ""
	d.Publications[0].URL = ""
	if err := d.Validate(); err != nil {
		t.Fatalf("optional urls should be omittable: %v", err)
	}
}

func TestStatusValues(t *testing.T) {
	for _, l := range Locales() {
		d, _ := Resolve(l)
		for _, p := range d.Projects {
			if !p.Status.Valid() {
				t.Errorf("%s: project %s has status %q", l, p.ID, p.Status)
			}
			if d.ProjectStatusLabel(p.Status) == "" {
				t.Errorf("%s: empty label for %q", l, p.Status)
			}
		}
		for _, p := range d.Publications {
			if !p.Status.Valid() {
				t.Errorf("%s: publication %s has status %q", l, p.ID, p.Status)
			}
		}
	}
}

func TestMailTo(t *testing.T) {
	if got := Owner.MailTo(); got != "mailto:longxinyang@foxmail.com" {
		t.Errorf("MailTo() = %q", got)
	}
}
