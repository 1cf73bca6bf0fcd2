package domain

// Container is the shared shape of the two node kinds that hold
// sections: notebooks and section groups. The Graph API exposes the
// same child-collection links on both, which is what lets the
// traversal treat them uniformly.
type Container struct {
	DisplayName      string `json:"displayName"`
	SectionsURL      string `json:"sectionsUrl"`
	SectionGroupsURL string `json:"sectionGroupsUrl"`
}

// Notebook is a top-level OneNote notebook.
type Notebook struct {
	ID string `json:"id"`
	Container
}

// SectionGroup is a nested folder of sections inside a notebook or
// another section group. Nesting depth is unbounded.
type SectionGroup struct {
	ID string `json:"id"`
	Container
}

// Section is a leaf container holding pages.
type Section struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	PagesURL    string `json:"pagesUrl"`
}

// Page is a single OneNote page. ContentURL may be empty; such pages
// still exist in the traversal but have no retrievable body.
type Page struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ContentURL string `json:"contentUrl"`
}
