// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow for browsing the catalog:
//  1. [BrowseView] : Browse popular movies and toggle wishlist membership
//  2. [WishlistView] : Review saved movies and remove entries
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Wishlist toggles run as commands so a slow detail lookup never blocks keyboard input.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, w, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
