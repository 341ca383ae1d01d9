package epub

import (
	"time"
)

// ModifiedLayout is the dcterms:modified format: UTC with a trailing Z.
const ModifiedLayout = "2006-01-02T15:04:05Z"

// GetTitle returns the first title found.
func (pkg *Package) GetTitle() string {
	if len(pkg.Metadata.Titles) > 0 {
		return pkg.Metadata.Titles[0].Value
	}
	return ""
}

// SetTitle updates the title. It overwrites existing titles.
func (pkg *Package) SetTitle(title string) {
	pkg.Metadata.Titles = []SimpleMeta{{Value: title}}
}

// GetAuthor returns the first creator.
func (pkg *Package) GetAuthor() string {
	if len(pkg.Metadata.Creators) > 0 {
		return pkg.Metadata.Creators[0].Value
	}
	return ""
}

// SetAuthor sets the single creator and refines its role to "aut".
func (pkg *Package) SetAuthor(name string) {
	pkg.Metadata.Creators = []SimpleMeta{{Value: name, ID: CreatorID}}
	pkg.Metadata.Meta = append(pkg.Metadata.Meta, Meta{
		Refines:  "#" + CreatorID,
		Property: "role",
		Scheme:   "marc:relators",
		Value:    "aut",
	})
}

// GetLanguage returns the language.
func (pkg *Package) GetLanguage() string {
	if len(pkg.Metadata.Languages) > 0 {
		return pkg.Metadata.Languages[0].Value
	}
	return ""
}

// SetLanguage sets the language.
func (pkg *Package) SetLanguage(lang string) {
	pkg.Metadata.Languages = []SimpleMeta{{Value: lang}}
}

// GetSubjects returns a list of tags.
func (pkg *Package) GetSubjects() []string {
	var subjects []string
	for _, s := range pkg.Metadata.Subjects {
		subjects = append(subjects, s.Value)
	}
	return subjects
}

// SetSubjects overwrites tags. Order and duplicates are kept.
func (pkg *Package) SetSubjects(tags []string) {
	var newSubjects []SimpleMeta
	for _, t := range tags {
		newSubjects = append(newSubjects, SimpleMeta{Value: t})
	}
	pkg.Metadata.Subjects = newSubjects
}

// GetIdentifier returns the value of the unique identifier.
func (pkg *Package) GetIdentifier() string {
	for _, id := range pkg.Metadata.Identifiers {
		if id.ID == pkg.UniqueIdentifier {
			return id.Value
		}
	}
	return ""
}

// SetIdentifier sets the unique identifier referenced by the package element.
func (pkg *Package) SetIdentifier(value string) {
	pkg.UniqueIdentifier = BookIDRef
	pkg.Metadata.Identifiers = []SimpleMeta{{Value: value, ID: BookIDRef}}
}

// SetModified records the dcterms:modified timestamp.
func (pkg *Package) SetModified(t time.Time) {
	pkg.setProperty("dcterms:modified", t.UTC().Format(ModifiedLayout))
}

// GetMeta returns the content of an EPUB 2 style meta, or its property value.
func (pkg *Package) GetMeta(key string) string {
	for _, m := range pkg.Metadata.Meta {
		if m.Name == key {
			return m.Content
		}
		if m.Property == key && m.Refines == "" {
			return m.Value
		}
	}
	return ""
}

// setProperty appends an EPUB 3 <meta property="...">value</meta>.
func (pkg *Package) setProperty(property, value string) {
	pkg.Metadata.Meta = append(pkg.Metadata.Meta, Meta{Property: property, Value: value})
}

// setLegacyMeta updates or appends an EPUB 2 <meta name="..." content="..."/>.
func (pkg *Package) setLegacyMeta(name, content string) {
	for i, m := range pkg.Metadata.Meta {
		if m.Name == name {
			pkg.Metadata.Meta[i].Content = content
			return
		}
	}
	pkg.Metadata.Meta = append(pkg.Metadata.Meta, Meta{Name: name, Content: content})
}
