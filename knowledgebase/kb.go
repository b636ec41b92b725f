// Package knowledgebase embeds the bilingual ZP Pune knowledge base handed to
// the language model when answering general citizen queries.
package knowledgebase

import _ "embed"

//go:embed kb.json
var kbJSON string

// JSON returns the raw knowledge base document.
func JSON() string {
	return kbJSON
}
