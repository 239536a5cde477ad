// Package web holds the embedded templates and static asset trees.
package web

import (
	"embed"
	"io/fs"
)

// Templates holds the layout and page templates.
//
//go:embed templates
var Templates embed.FS

//go:embed public
var public embed.FS

//go:embed assets
var assets embed.FS

// PublicFS returns the public static tree rooted at its own directory.
func PublicFS() fs.FS {
	sub, err := fs.Sub(public, "public")
	if err != nil {
		panic(err)
	}
	return sub
}

// AssetsFS returns the assets static tree rooted at its own directory.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}
