package source

import "strings"

// Ext is the file extension of every document in the store.
const Ext = ".md"

// FileName returns the store file name for a document, or "" when no
// document is selected.
func FileName(name string) string {
	if name == "" {
		return ""
	}
	return name + Ext
}

// Resolve returns the fetchable address of a document's raw text:
// {base}/{name}.md. An empty name resolves to an empty address, meaning
// nothing is selected. The address is not checked for existence.
func Resolve(base, name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + FileName(name)
}
