package tui

import "calnotes/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewMonth = messages.ViewMonth
	ViewWeek  = messages.ViewWeek
	ViewDay   = messages.ViewDay
	ViewList  = messages.ViewList
)

type SwitchViewMsg = messages.SwitchViewMsg
type OpenEditorMsg = messages.OpenEditorMsg
type DeleteRequestMsg = messages.DeleteRequestMsg
type TogglePinMsg = messages.TogglePinMsg
type ToggleCompleteMsg = messages.ToggleCompleteMsg
type DataRefreshMsg = messages.DataRefreshMsg
