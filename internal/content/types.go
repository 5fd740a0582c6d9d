// Package content holds the site's hand-authored copy: one Dictionary type,
// instantiated once per supported locale.
package content

// TechStack is a technology label attached to a project.
type TechStack string

const (
	TechR          TechStack = "R"
	TechPython     TechStack = "Python"
	TechLinux      TechStack = "Linux"
	TechBash       TechStack = "Bash"
	TechSingleCell TechStack = "Single-cell"
	TechSpatial    TechStack = "Spatial Transcriptomics"
	TechGWAS       TechStack = "GWAS"
	TechReact      TechStack = "React"
	TechShiny      TechStack = "Shiny"
	TechDocker     TechStack = "Docker"
	TechSnakemake  TechStack = "Snakemake"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "Completed"
	StatusInProgress ProjectStatus = "In Progress"
)

func (s ProjectStatus) Valid() bool {
	return s == StatusCompleted || s == StatusInProgress
}

// PublicationStatus is the review state of a publication.
type PublicationStatus string

const (
	StatusPublished     PublicationStatus = "Published"
	StatusUnderRevision PublicationStatus = "Under Revision"
	StatusInPreparation PublicationStatus = "In Preparation"
)

func (s PublicationStatus) Valid() bool {
	switch s {
	case StatusPublished, StatusUnderRevision, StatusInPreparation:
		return true
	}
	return false
}

// PersonalInfo describes the site owner.
type PersonalInfo struct {
	Name     string   `json:"name" yaml:"name"`
	Role     string   `json:"role" yaml:"role"`
	Tagline  string   `json:"tagline" yaml:"tagline"`
	Location string   `json:"location" yaml:"location"`
	Intro    string   `json:"intro" yaml:"intro"`
	Bio      []string `json:"bio" yaml:"bio"`
}

// Project is a code repository card.
type Project struct {
	ID          string        `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Tags        []TechStack   `json:"tags" yaml:"tags"`
	GithubURL   string        `json:"githubUrl" yaml:"githubUrl"`
	DemoURL     string        `json:"demoUrl,omitempty" yaml:"demoUrl,omitempty"`
	Status      ProjectStatus `json:"status" yaml:"status"`
}

// Note is a link to a blog post or tutorial.
type Note struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Date        string   `json:"date" yaml:"date"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
	Link        string   `json:"link" yaml:"link"`
}

// LearningTool is an interactive app or teaching resource.
type LearningTool struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
	URL         string `json:"url" yaml:"url"`
}

// Publication is a citation in the about section.
type Publication struct {
	ID       string            `json:"id" yaml:"id"`
	Citation string            `json:"citation" yaml:"citation"`
	URL      string            `json:"url,omitempty" yaml:"url,omitempty"`
	Status   PublicationStatus `json:"status" yaml:"status"`
}

// Navigation holds the six section labels, in display order.
type Navigation struct {
	Home     string `json:"home" yaml:"home"`
	Projects string `json:"projects" yaml:"projects"`
	Learning string `json:"learning" yaml:"learning"`
	Notes    string `json:"notes" yaml:"notes"`
	About    string `json:"about" yaml:"about"`
	Contact  string `json:"contact" yaml:"contact"`
}

// StatusLabels translates the canonical status values for display.
type StatusLabels struct {
	Completed     string `json:"completed" yaml:"completed"`
	InProgress    string `json:"inProgress" yaml:"inProgress"`
	Published     string `json:"published" yaml:"published"`
	UnderRevision string `json:"underRevision" yaml:"underRevision"`
	InPreparation string `json:"inPreparation" yaml:"inPreparation"`
}

// UILabels are the fixed strings of buttons, headings and placeholders.
type UILabels struct {
	Greeting           string       `json:"greeting" yaml:"greeting"`
	ViewProjects       string       `json:"viewProjects" yaml:"viewProjects"`
	ReadNotes          string       `json:"readNotes" yaml:"readNotes"`
	RepoSubtitle       string       `json:"repoSubtitle" yaml:"repoSubtitle"`
	LearningSubtitle   string       `json:"learningSubtitle" yaml:"learningSubtitle"`
	NotesSubtitle      string       `json:"notesSubtitle" yaml:"notesSubtitle"`
	ViewCode           string       `json:"viewCode" yaml:"viewCode"`
	ViewDemo           string       `json:"viewDemo" yaml:"viewDemo"`
	OpenTool           string       `json:"openTool" yaml:"openTool"`
	ReadMore           string       `json:"readMore" yaml:"readMore"`
	VisitBlog          string       `json:"visitBlog" yaml:"visitBlog"`
	AboutTitle         string       `json:"aboutTitle" yaml:"aboutTitle"`
	PublicationsTitle  string       `json:"publicationsTitle" yaml:"publicationsTitle"`
	DOILink            string       `json:"doiLink" yaml:"doiLink"`
	ConnectTitle       string       `json:"connectTitle" yaml:"connectTitle"`
	ConnectDesc        string       `json:"connectDesc" yaml:"connectDesc"`
	NamePlaceholder    string       `json:"namePlaceholder" yaml:"namePlaceholder"`
	EmailPlaceholder   string       `json:"emailPlaceholder" yaml:"emailPlaceholder"`
	MessagePlaceholder string       `json:"messagePlaceholder" yaml:"messagePlaceholder"`
	SendMessage        string       `json:"sendMessage" yaml:"sendMessage"`
	RightsReserved     string       `json:"rightsReserved" yaml:"rightsReserved"`
	FooterText         string       `json:"footerText" yaml:"footerText"`
	LangToggle         string       `json:"langToggle" yaml:"langToggle"`
	LangSwitch         string       `json:"langSwitch" yaml:"langSwitch"`
	ThemeToggle        string       `json:"themeToggle" yaml:"themeToggle"`
	MenuToggle         string       `json:"menuToggle" yaml:"menuToggle"`
	Status             StatusLabels `json:"status" yaml:"status"`
}

// Dictionary is the complete set of display strings and content lists for
// one locale. Every locale instantiates the same type.
type Dictionary struct {
	Locale        Locale         `json:"locale" yaml:"locale"`
	Brand         string         `json:"brand" yaml:"brand"`
	PersonalInfo  PersonalInfo   `json:"personalInfo" yaml:"personalInfo"`
	Navigation    Navigation     `json:"navigation" yaml:"navigation"`
	UI            UILabels       `json:"ui" yaml:"ui"`
	Projects      []Project      `json:"projects" yaml:"projects"`
	LearningTools []LearningTool `json:"learningTools" yaml:"learningTools"`
	Notes         []Note         `json:"notes" yaml:"notes"`
	Publications  []Publication  `json:"publications" yaml:"publications"`
}

// ProjectStatusLabel returns the localized label for a project status.
func (d *Dictionary) ProjectStatusLabel(s ProjectStatus) string {
	switch s {
	case StatusCompleted:
		return d.UI.Status.Completed
	case StatusInProgress:
		return d.UI.Status.InProgress
	}
	return string(s)
}

// PublicationStatusLabel returns the localized label for a publication status.
func (d *Dictionary) PublicationStatusLabel(s PublicationStatus) string {
	switch s {
	case StatusPublished:
		return d.UI.Status.Published
	case StatusUnderRevision:
		return d.UI.Status.UnderRevision
	case StatusInPreparation:
		return d.UI.Status.InPreparation
	}
	return string(s)
}

// Contact holds the locale independent outbound contact identifiers.
type Contact struct {
	Email    string `json:"email" yaml:"email"`
	GitHub   string `json:"github" yaml:"github"`
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	Blog     string `json:"blog" yaml:"blog"`
}

// MailTo returns the mailto URI for the contact address.
func (c Contact) MailTo() string {
	return "mailto:" + c.Email
}
