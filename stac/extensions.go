package stac

import "sync"

// ExtensionHooks describes one known extension: the schema URI current
// tooling should use, the legacy identifiers that older documents carried
// for it, and the object kinds it applies to. Extension packages register
// their hooks at init time.
type ExtensionHooks struct {
	SchemaURI string
	PrevIDs   []string
	Kinds     []ObjectKind
}

// Applies reports whether the extension supports kind.
func (h ExtensionHooks) Applies(kind ObjectKind) bool {
	for _, k := range h.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

var (
	hooksMu sync.RWMutex
	hooks   []ExtensionHooks
)

// RegisterExtension records h for URI migration. Registering the same schema
// URI again replaces the earlier entry.
func RegisterExtension(h ExtensionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	for i := range hooks {
		if hooks[i].SchemaURI == h.SchemaURI {
			hooks[i] = h
			return
		}
	}
	hooks = append(hooks, h)
}

// RegisteredExtensions returns a snapshot of the known extension hooks.
func RegisteredExtensions() []ExtensionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return append([]ExtensionHooks(nil), hooks...)
}

// MigrateExtensionURIs rewrites legacy extension identifiers to their current
// schema URIs, deduplicating while keeping first-seen order. Unknown entries
// pass through untouched. Decoding applies this to every object, so documents
// written before extensions moved to versioned schema URIs keep working.
func MigrateExtensionURIs(uris []string) []string {
	if len(uris) == 0 {
		return uris
	}
	hooksMu.RLock()
	defer hooksMu.RUnlock()

	out := make([]string, 0, len(uris))
	seen := make(map[string]bool, len(uris))
	for _, uri := range uris {
		mapped := uri
		for _, h := range hooks {
			if hasString(h.PrevIDs, uri) {
				mapped = h.SchemaURI
				break
			}
		}
		if !seen[mapped] {
			seen[mapped] = true
			out = append(out, mapped)
		}
	}
	return out
}
