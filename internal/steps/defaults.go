package steps

const (
	DefaultTitle    = "How It Works"
	DefaultSubtitle = "Get organized in four simple steps and spend your time on what matters most."
)

var defaultRecords = [...]Record{
	{
		Number:      "01",
		Title:       "Create tasks",
		Description: "Capture everything on your mind in seconds. Add tasks with due dates, notes and reminders.",
	},
	{
		Number:      "02",
		Title:       "Organize and prioritize",
		Description: "Group tasks into projects, tag them and set priorities so the important work comes first.",
	},
	{
		Number:      "03",
		Title:       "Track progress",
		Description: "See what is done, what is next and what is overdue at a glance across all your lists.",
	},
	{
		Number:      "04",
		Title:       "Accomplish more",
		Description: "Check tasks off, build momentum and finish your day knowing nothing slipped through.",
	},
}

// Default returns the compiled-in four step sequence.
func Default() Sequence {
	return NewSequence(defaultRecords[:]...)
}

// DefaultHeader returns the compiled-in section header.
func DefaultHeader() Header {
	return Header{Title: DefaultTitle, Subtitle: DefaultSubtitle}
}

// DefaultSection returns the compiled-in header and steps.
func DefaultSection() Section {
	return Section{Header: DefaultHeader(), Steps: Default()}
}
