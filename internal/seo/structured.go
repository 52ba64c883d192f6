package seo

import (
	"bytes"
	"encoding/json"
)

// LDJSONType is the script type for JSON-LD structured data.
const LDJSONType = "application/ld+json"

// TechArticle is the schema.org object embedded in article pages.
type TechArticle struct {
	Context       string       `json:"@context"`
	Type          string       `json:"@type"`
	Headline      string       `json:"headline"`
	Description   string       `json:"description"`
	Author        *SchemaParty `json:"author,omitempty"`
	Publisher     *SchemaParty `json:"publisher,omitempty"`
	URL           string       `json:"url"`
	DatePublished string       `json:"datePublished,omitempty"`
	DateModified  string       `json:"dateModified"`
}

// SchemaParty is a schema.org Person.
type SchemaParty struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// NewTechArticle assembles the structured data for one article.
func NewTechArticle(site Site, headline, description, canonicalURL string) TechArticle {
	a := TechArticle{
		Context:       "https://schema.org",
		Type:          "TechArticle",
		Headline:      headline,
		Description:   description,
		URL:           canonicalURL,
		DatePublished: site.PublishedDay(),
		DateModified:  site.BuildDay(),
	}
	if site.Author.Name != "" {
		party := &SchemaParty{Type: "Person", Name: site.Author.Name, URL: site.Author.URL}
		a.Author = party
		a.Publisher = party
	}
	return a
}

// Marshal encodes the article without HTML escaping; the html renderer
// escapes script bodies itself.
func (a TechArticle) Marshal() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(a); err != nil {
		// All fields are strings; encoding cannot fail.
		return "{}"
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
