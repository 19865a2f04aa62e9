package models

// Source is one operator page the scanner watches.
type Source struct {
	Operator string // provider label attached to every offer from this page
	URL      string
	Selector string // CSS selector matching one node per offer card
}
