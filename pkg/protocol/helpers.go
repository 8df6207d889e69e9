package protocol

// =============================================================================
// Helper constructors for server → client notifications
// =============================================================================

// NewConfigNotification creates a config notification for a mode activation.
func NewConfigNotification(data ConfigData) *Notification {
	return &Notification{Type: TypeConfig, Data: &data}
}

// NewTranscript creates a transcript notification with the AI's spoken text.
func NewTranscript(text string) *Notification {
	return &Notification{Type: TypeTranscript, Text: text}
}

// NewTurnComplete creates a turn_complete notification.
func NewTurnComplete() *Notification {
	return &Notification{Type: TypeTurnComplete}
}

// NewComplete creates a terminal notification for a mode. The score is only
// meaningful for qa_complete and may be empty otherwise.
func NewComplete(t MessageType, score string) *Notification {
	return &Notification{Type: t, Score: score}
}

// NewError creates an error notification with a user-visible message.
func NewError(message string) *Notification {
	return &Notification{Type: TypeError, Message: message}
}
