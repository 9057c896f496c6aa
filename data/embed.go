// Package data embeds the default word pools and quiz questions.
package data

import _ "embed"

//go:embed words.json
var Words []byte

//go:embed quiz.json
var Quiz []byte
