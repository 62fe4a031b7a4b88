// Package recent recovers the list of recently opened project folders from
// Windsurf's serialized menu-bar state. The document shape is owned by the
// editor and undocumented, so every navigation step is guarded; any missing
// or mismatched segment degrades to an empty result rather than an error.
package recent

import "strings"

const (
	recentMenuID    = "submenuitem.MenubarRecentMenu"
	recentMenuLabel = "Open &&Recent"
	recentFolderID  = "openRecentFolder"
)

// Project is one recently opened folder. Path and URI carry the uri.path
// field verbatim; Label is the final '/'-segment of the menu label.
type Project struct {
	URI   string
	Label string
	Path  string
}

// Extract walks raw down to the recent-folder entries of the File menu and
// maps them into Projects, preserving their original order. It is total:
// no input shape causes a panic or an error, only a shorter (possibly
// empty) result.
func Extract(raw any) []Project {
	items, ok := navigateItems(raw)
	if !ok {
		return nil
	}

	recentMenu, ok := findRecentMenu(items)
	if !ok {
		return nil
	}

	entries, ok := asSlice(field(recentMenu, "submenu")["items"])
	if !ok {
		return nil
	}

	var projects []Project
	for _, entry := range entries {
		item, ok := asMap(entry)
		if !ok {
			continue
		}
		if stringField(item, "id") != recentFolderID {
			continue
		}
		// Entries whose uri is a bare string (or absent) are recent files,
		// not folders; they carry no structured path and are dropped.
		uri, ok := asMap(item["uri"])
		if !ok {
			continue
		}
		// A uri object without a string path gives the launcher nothing
		// to open; every emitted Project has a non-empty Path.
		path := stringField(uri, "path")
		if path == "" {
			continue
		}
		projects = append(projects, Project{
			URI:   path,
			Label: lastSegment(stringField(item, "label")),
			Path:  path,
		})
	}
	return projects
}

// navigateItems resolves raw.lastKnownMenubarData.menus.File.items.
func navigateItems(raw any) ([]any, bool) {
	menubar, ok := asMap(raw)
	if !ok {
		return nil, false
	}
	fileMenu := field(field(menubar["lastKnownMenubarData"], "menus"), "File")
	return asSlice(fileMenu["items"])
}

// findRecentMenu locates the "Open Recent" submenu item. Both the id and
// the mnemonic-escaped label must match exactly; localized or unescaped
// variants are a different menu.
func findRecentMenu(items []any) (map[string]any, bool) {
	for _, it := range items {
		item, ok := asMap(it)
		if !ok {
			continue
		}
		if stringField(item, "id") == recentMenuID && stringField(item, "label") == recentMenuLabel {
			return item, true
		}
	}
	return nil, false
}

func lastSegment(label string) string {
	if label == "" {
		return ""
	}
	parts := strings.Split(label, "/")
	return parts[len(parts)-1]
}

// Total accessors over the untyped JSON tree. Each returns its zero value
// on any shape mismatch so navigation chains short-circuit cleanly.

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

func asSlice(v any) ([]any, bool) {
	s, ok := v.([]any)
	return s, ok
}

// field returns v's named sub-object, or an empty map when v is not an
// object or the field is not one. Chained calls never panic.
func field(v any, name string) map[string]any {
	m, ok := asMap(v)
	if !ok {
		return map[string]any{}
	}
	sub, ok := asMap(m[name])
	if !ok {
		return map[string]any{}
	}
	return sub
}

func stringField(m map[string]any, name string) string {
	s, _ := m[name].(string)
	return s
}
