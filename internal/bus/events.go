package bus

// Event is anything the worker consumes from the queue: a CommandEvent or
// a RefreshEvent.
type Event interface{}

// CommandEvent is an inbound chat message that may contain a command.
type CommandEvent struct {
	AuthorID  string // message author
	ChannelID string // channel the message was posted in
	MessageID string // the invoking message, target for reactions
	Content   string // raw text content
}

// RefreshEvent asks the worker to run one refresh pass over all countdowns.
type RefreshEvent struct{}
