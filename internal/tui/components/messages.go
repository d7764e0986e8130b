package components

// SelectionChangedMsg is emitted when a selector moves to a new option.
type SelectionChangedMsg struct {
	Selector string
	Value    string
}
