package registry

import "actionsearch/internal/domain"

// NewDefault returns a registry populated with the built-in groups. The
// filters group is updated for an RGB drawable with alpha.
func NewDefault() *Registry {
	r := New()

	r.AddGroup(&domain.ActionGroup{
		Name: "dialogs",
		Actions: []*domain.Action{
			{Name: "dialogs-action-search", Label: "_Search and Run a Command", Tooltip: "Search commands by keyword, and run them", Icon: "edit-find", Shortcut: "/", Sensitive: true},
			{Name: "dialogs-preferences", Label: "_Preferences", Tooltip: "Open the preferences dialog", Icon: "preferences-system", Sensitive: true},
			{Name: "dialogs-keyboard-shortcuts", Label: "_Keyboard Shortcuts", Tooltip: "Open the keyboard shortcuts editor", Icon: "keyboard-shortcuts", Sensitive: true},
			{Name: "dialogs-toolbox", Label: "Tool_box", Tooltip: "Raise the toolbox", Shortcut: "Ctrl+B", Sensitive: true},
		},
	})

	r.AddGroup(&domain.ActionGroup{
		Name: "edit",
		Actions: []*domain.Action{
			{Name: "edit-menu", Label: "_Edit", Sensitive: true},
			{Name: "edit-undo", Label: "_Undo", Tooltip: "Undo the last operation", Icon: "edit-undo", Shortcut: "Ctrl+Z", Sensitive: true},
			{Name: "edit-redo", Label: "_Redo", Tooltip: "Redo the last operation that was undone", Icon: "edit-redo", Shortcut: "Ctrl+Y", Sensitive: false},
			{Name: "edit-cut", Label: "Cu_t", Tooltip: "Move the selected pixels to the clipboard", Icon: "edit-cut", Shortcut: "Ctrl+X", Sensitive: true},
			{Name: "edit-copy", Label: "_Copy", Tooltip: "Copy the selected pixels to the clipboard", Icon: "edit-copy", Shortcut: "Ctrl+C", Sensitive: true},
			{Name: "edit-paste", Label: "_Paste", Tooltip: "Paste the content of the clipboard", Icon: "edit-paste", Shortcut: "Ctrl+V", Sensitive: true},
			{Name: "edit-fill-fg", Label: "_Fill with FG Color", Tooltip: "Fill the selection using the foreground color", Icon: "tool-bucket-fill", Shortcut: "Ctrl+,", Sensitive: true},
			{Name: "edit-clear", Label: "Cl_ear", Tooltip: "Clear the selected pixels", Icon: "edit-clear", Shortcut: "Delete", Sensitive: true},
		},
	})

	r.AddGroup(&domain.ActionGroup{
		Name: "select",
		Actions: []*domain.Action{
			{Name: "select-popup", Label: "Selection Editor Menu", Sensitive: true},
			{Name: "select-all", Label: "_All", Tooltip: "Select everything", Icon: "edit-select-all", Shortcut: "Ctrl+A", Sensitive: true},
			{Name: "select-none", Label: "_None", Tooltip: "Dismiss the selection", Icon: "edit-select-none", Shortcut: "Shift+Ctrl+A", Sensitive: true},
			{Name: "select-invert", Label: "_Invert", Tooltip: "Invert the selection", Icon: "edit-select-invert", Shortcut: "Ctrl+I", Sensitive: true},
			{Name: "select-feather", Label: "Fea_ther...", Tooltip: "Blur the selection border so that it fades out smoothly", Sensitive: true},
			{Name: "select-sharpen", Label: "_Sharpen", Tooltip: "Remove fuzziness from the selection", Sensitive: true},
			{Name: "select-shrink", Label: "S_hrink...", Tooltip: "Contract the selection", Icon: "selection-shrink", Sensitive: true},
			{Name: "select-grow", Label: "_Grow...", Tooltip: "Enlarge the selection", Icon: "selection-grow", Sensitive: true},
		},
	})

	r.AddGroup(&domain.ActionGroup{
		Name: "view",
		Actions: []*domain.Action{
			{Name: "view-show-grid", Label: "S_how Grid", Tooltip: "Display the image's grid", Toggle: true, Sensitive: true},
			{Name: "view-show-guides", Label: "Show _Guides", Tooltip: "Display the image's guides", Toggle: true, Active: true, Sensitive: true},
			{Name: "view-snap-to-grid", Label: "Sn_ap to Grid", Tooltip: "Tool operations snap to the grid", Toggle: true, Sensitive: true},
			{Name: "view-fullscreen", Label: "Fr_ullscreen", Tooltip: "Toggle fullscreen view", Icon: "view-fullscreen", Shortcut: "F11", Toggle: true, Sensitive: true},
		},
	})

	r.AddGroup(&domain.ActionGroup{
		Name: "context",
		Actions: []*domain.Action{
			{Name: "context-colors-default", Label: "_Default Colors", Tooltip: "Set foreground color to black, background color to white", Shortcut: "D", Sensitive: true},
			{Name: "context-colors-swap", Label: "S_wap Colors", Tooltip: "Exchange foreground and background colors", Shortcut: "X", Sensitive: true},
		},
	})

	r.AddGroup(&domain.ActionGroup{
		Name: "plug-in",
		Actions: []*domain.Action{
			{Name: "plug-in-reset-all", Label: "Reset all _Filters", Tooltip: "Reset all filters to their default values", Icon: "reset", Sensitive: true},
			{Name: "plug-in-recent-01", Label: "Re-run Gaussian Blur", Sensitive: true},
			{Name: "plug-in-recent-02", Label: "Re-run Unsharp Mask", Sensitive: true},
		},
	})

	filters := NewFiltersGroup()
	UpdateFilters(filters, DrawableState{Present: true, Writable: true, Alpha: true})
	r.AddGroup(filters)

	return r
}
