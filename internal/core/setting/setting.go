// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package setting reads grouped key/value site settings.
package setting

// GroupWebsite holds the public identity of the site.
const GroupWebsite = "website"

// Website is the typed view of the website group.
type Website struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Defaults used when a key is missing.
const (
	DefaultWebsiteName        = "Inkwell"
	DefaultWebsiteDescription = ""
)
