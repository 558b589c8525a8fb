package views

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Binding names an element a handler expects in its page's markup
type Binding struct {
	Tag   string
	Attr  string
	Value string
}

func (b Binding) String() string {
	if b.Attr == "id" {
		return "#" + b.Value
	}
	return fmt.Sprintf("%s[%s=%s]", b.Tag, b.Attr, b.Value)
}

func byID(id string) Binding { return Binding{Attr: "id", Value: id} }

// Bindings lists, per page, the elements that must be present
var Bindings = map[string][]Binding{
	PageLogin:   {{Tag: "form", Attr: "name", Value: "login"}},
	PageHome:    nil,
	PageCreate:  {byID("postContainer"), byID("createPostButton")},
	PageView:    {byID("singlePostContainer")},
	PageEdit:    {byID("postContainer"), byID("editPostForm"), byID("postTitle"), byID("postBody"), byID("postMedia"), byID("deletePostButton")},
	PageProfile: {byID("postContainer")},
}

// checkBindings fails when page's markup lacks a bound element
func checkBindings(page, src string) error {
	found := make(map[Binding]bool)

	z := html.NewTokenizer(strings.NewReader(src))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if z.Err() == io.EOF {
				break
			}
			return fmt.Errorf("page %s: scan markup: %w", page, z.Err())
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		tok := z.Token()
		for _, a := range tok.Attr {
			found[Binding{Attr: a.Key, Value: a.Val}] = true
			found[Binding{Tag: tok.Data, Attr: a.Key, Value: a.Val}] = true
		}
	}

	for _, b := range Bindings[page] {
		if !found[b] {
			return fmt.Errorf("page %s: missing element %s", page, b)
		}
	}
	return nil
}
