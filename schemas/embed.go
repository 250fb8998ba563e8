// Package schemas embeds the JSON Schemas for stylemind's output artifacts.
package schemas

import "embed"

// Schema file names.
const (
	StyleProfile  = "style_profile.schema.json"
	CorpusSources = "corpus_sources.schema.json"
)

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
