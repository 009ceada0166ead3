package app

import "time"

type cardsReadyMsg struct {
	err error
}

type notesRefreshedMsg struct {
	err error
}

type noteCreatedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type localeSwitchedMsg struct {
	locale string
	err    error
}

type toastTickMsg time.Time
