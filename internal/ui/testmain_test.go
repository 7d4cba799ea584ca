package ui

import (
	"github.com/cfs-ui/cfs-docs/internal/docs"
)

type fakeSource struct {
	items   []docs.NavItem
	loading bool
	err     error
}

func (f *fakeSource) NavItems() ([]docs.NavItem, bool) { return docs.CloneNav(f.items), f.loading }
func (f *fakeSource) Err() error                       { return f.err }
func (f *fakeSource) Indexed() int                     { return docs.CountIndexed(f.items) }

func sampleSource() *fakeSource {
	return &fakeSource{items: []docs.NavItem{
		{Title: "Introduction", URL: "/", Content: docs.StringPtr("Welcome to CFS UI.")},
		{Title: "Setup", URL: "/setup", Content: docs.StringPtr("Run the install script first.")},
		{Title: "FAQ", URL: "/faq", Content: docs.StringPtr("Setup is covered in the setup guide.")},
		{Title: "API Integration", URL: "/api-integration"},
		{Title: "Authentication", URL: "/authentication"},
	}}
}
