package views

import "github.com/anonto42/connectly/web/internal/session"

// Paths the header links to
const (
	PathHome    = "/"
	PathProfile = "/profile/"
	PathCreate  = "/post/create/"
	PathLogout  = "/auth/logout/"
	PathSearch  = "/search/submit/"
)

// NavLink is one entry of the navigation bar
type NavLink struct {
	Label  string
	Href   string
	Icon   string
	Active bool
}

// Header is the global navigation bar
type Header struct {
	Brand         string
	Links         []NavLink
	LogoutAction  string
	LogoutConfirm string
	Search        bool
	SearchAction  string
}

// HeaderOptions toggle the optional parts of the header
type HeaderOptions struct {
	HighlightActive bool
	Search          bool
}

// BuildHeader returns the header for sess, or nil when there is no token
func BuildHeader(sess *session.Session, currentPath string, opts HeaderOptions) *Header {
	if !sess.Authenticated() {
		return nil
	}

	links := []NavLink{
		{Label: "Home", Href: PathHome, Icon: "fa-home"},
		{Label: "Profile", Href: PathProfile, Icon: "fa-user"},
		{Label: "New Post", Href: PathCreate, Icon: "fa-plus"},
	}
	if opts.HighlightActive {
		for i := range links {
			links[i].Active = links[i].Href == currentPath
		}
	}

	return &Header{
		Brand:         "Connectly",
		Links:         links,
		LogoutAction:  PathLogout,
		LogoutConfirm: "Are you sure you want to log out?",
		Search:        opts.Search,
		SearchAction:  PathSearch,
	}
}
