package nylas

// Resource represents the base structure shared by all API resources.
// Unknown fields in API responses are tolerated for forward compatibility.
type Resource struct {
	ID        string `json:"id"         yaml:"id"`
	Object    string `json:"object"     yaml:"object"`
	AccountID string `json:"account_id" yaml:"account_id"`
}

// Participant represents a sender or recipient on a message or thread.
type Participant struct {
	Name  string `json:"name"  yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// Thread represents a conversation thread.
type Thread struct {
	Resource

	Subject               string        `json:"subject"                 yaml:"subject"`
	Participants          []Participant `json:"participants"            yaml:"participants"`
	Snippet               string        `json:"snippet"                 yaml:"snippet"`
	LastMessageTimestamp  int64         `json:"last_message_timestamp"  yaml:"last_message_timestamp"`
	FirstMessageTimestamp int64         `json:"first_message_timestamp" yaml:"first_message_timestamp"`
	Unread                bool          `json:"unread"                  yaml:"unread"`
	Starred               bool          `json:"starred"                 yaml:"starred"`
	Version               int           `json:"version"                 yaml:"version"`
	MessageIDs            []string      `json:"message_ids"             yaml:"message_ids"`
	DraftIDs              []string      `json:"draft_ids"               yaml:"draft_ids"`
	Folders               []Folder      `json:"folders,omitempty"       yaml:"folders,omitempty"`
	Labels                []Label       `json:"labels,omitempty"        yaml:"labels,omitempty"`
}

// Message represents a single email message.
type Message struct {
	Resource

	ThreadID string        `json:"thread_id"        yaml:"thread_id"`
	Subject  string        `json:"subject"          yaml:"subject"`
	From     []Participant `json:"from"             yaml:"from"`
	To       []Participant `json:"to"               yaml:"to"`
	CC       []Participant `json:"cc,omitempty"     yaml:"cc,omitempty"`
	BCC      []Participant `json:"bcc,omitempty"    yaml:"bcc,omitempty"`
	ReplyTo  []Participant `json:"reply_to,omitempty" yaml:"reply_to,omitempty"`
	Date     int64         `json:"date"             yaml:"date"`
	Unread   bool          `json:"unread"           yaml:"unread"`
	Starred  bool          `json:"starred"          yaml:"starred"`
	Snippet  string        `json:"snippet"          yaml:"snippet"`
	Body     string        `json:"body"             yaml:"body"`
	Files    []File        `json:"files,omitempty"  yaml:"files,omitempty"`
	Folder   *Folder       `json:"folder,omitempty" yaml:"folder,omitempty"`
	Labels   []Label       `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// Draft represents an unsent draft message.
type Draft struct {
	Message

	ReplyToMessageID string `json:"reply_to_message_id,omitempty" yaml:"reply_to_message_id,omitempty"`
	Version          int    `json:"version"                       yaml:"version"`
}

// DraftRequest is the payload for creating or updating a draft.
type DraftRequest struct {
	Subject          string        `json:"subject,omitempty"             yaml:"subject,omitempty"`
	To               []Participant `json:"to,omitempty"                  yaml:"to,omitempty"`
	CC               []Participant `json:"cc,omitempty"                  yaml:"cc,omitempty"`
	BCC              []Participant `json:"bcc,omitempty"                 yaml:"bcc,omitempty"`
	ReplyTo          []Participant `json:"reply_to,omitempty"            yaml:"reply_to,omitempty"`
	Body             string        `json:"body,omitempty"                yaml:"body,omitempty"`
	FileIDs          []string      `json:"file_ids,omitempty"            yaml:"file_ids,omitempty"`
	ReplyToMessageID string        `json:"reply_to_message_id,omitempty" yaml:"reply_to_message_id,omitempty"`
	Version          *int          `json:"version,omitempty"             yaml:"version,omitempty"`
}

// SendRequest is the payload for sending a message directly, without an
// intermediate draft.
type SendRequest struct {
	DraftID string        `json:"draft_id,omitempty" yaml:"draft_id,omitempty"`
	Subject string        `json:"subject,omitempty"  yaml:"subject,omitempty"`
	To      []Participant `json:"to,omitempty"       yaml:"to,omitempty"`
	CC      []Participant `json:"cc,omitempty"       yaml:"cc,omitempty"`
	BCC     []Participant `json:"bcc,omitempty"      yaml:"bcc,omitempty"`
	ReplyTo []Participant `json:"reply_to,omitempty" yaml:"reply_to,omitempty"`
	Body    string        `json:"body,omitempty"     yaml:"body,omitempty"`
	FileIDs []string      `json:"file_ids,omitempty" yaml:"file_ids,omitempty"`
	Version *int          `json:"version,omitempty"  yaml:"version,omitempty"`
}

// File represents an attachment.
type File struct {
	Resource

	ContentType string   `json:"content_type"          yaml:"content_type"`
	Filename    string   `json:"filename"              yaml:"filename"`
	Size        int      `json:"size"                  yaml:"size"`
	MessageIDs  []string `json:"message_ids,omitempty" yaml:"message_ids,omitempty"`
}

// Contact represents an address book contact.
type Contact struct {
	Resource

	Name         string             `json:"name"                    yaml:"name"`
	Email        string             `json:"email"                   yaml:"email"`
	PhoneNumbers []ContactPhone     `json:"phone_numbers,omitempty" yaml:"phone_numbers,omitempty"`
	WebPages     []ContactWebPage   `json:"web_pages,omitempty"     yaml:"web_pages,omitempty"`
}

// ContactPhone is a typed phone number on a contact.
type ContactPhone struct {
	Type   string `json:"type"   yaml:"type"`
	Number string `json:"number" yaml:"number"`
}

// ContactWebPage is a typed web page link on a contact.
type ContactWebPage struct {
	Type string `json:"type" yaml:"type"`
	URL  string `json:"url"  yaml:"url"`
}

// EventTime represents the polymorphic "when" block on an event. Exactly one
// of the time, timespan, date, or datespan field sets is populated.
type EventTime struct {
	Object    string `json:"object,omitempty"     yaml:"object,omitempty"`
	Time      int64  `json:"time,omitempty"       yaml:"time,omitempty"`
	StartTime int64  `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	EndTime   int64  `json:"end_time,omitempty"   yaml:"end_time,omitempty"`
	Date      string `json:"date,omitempty"       yaml:"date,omitempty"`
	StartDate string `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"   yaml:"end_date,omitempty"`
}

// EventParticipant is an attendee on a calendar event.
type EventParticipant struct {
	Name    string `json:"name,omitempty"    yaml:"name,omitempty"`
	Email   string `json:"email"             yaml:"email"`
	Status  string `json:"status,omitempty"  yaml:"status,omitempty"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Event represents a calendar event.
type Event struct {
	Resource

	CalendarID   string             `json:"calendar_id"            yaml:"calendar_id"`
	MessageID    string             `json:"message_id,omitempty"   yaml:"message_id,omitempty"`
	Title        string             `json:"title"                  yaml:"title"`
	Description  string             `json:"description,omitempty"  yaml:"description,omitempty"`
	Location     string             `json:"location,omitempty"     yaml:"location,omitempty"`
	When         *EventTime         `json:"when,omitempty"         yaml:"when,omitempty"`
	Busy         bool               `json:"busy"                   yaml:"busy"`
	ReadOnly     bool               `json:"read_only"              yaml:"read_only"`
	Status       string             `json:"status,omitempty"       yaml:"status,omitempty"`
	Participants []EventParticipant `json:"participants,omitempty" yaml:"participants,omitempty"`
}

// Calendar represents a calendar.
type Calendar struct {
	Resource

	Name        string `json:"name"                  yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	ReadOnly    bool   `json:"read_only"             yaml:"read_only"`
}

// Folder represents an IMAP-style folder.
type Folder struct {
	Resource

	Name        string `json:"name"         yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// Label represents a Gmail-style label.
type Label struct {
	Resource

	Name        string `json:"name"         yaml:"name"`
	DisplayName string `json:"display_name" yaml:"display_name"`
}

// Account represents an account under the application management namespace
// (/a/{app_id}/accounts).
type Account struct {
	Resource

	BillingState string `json:"billing_state"   yaml:"billing_state"`
	Email        string `json:"email"           yaml:"email"`
	Provider     string `json:"provider"        yaml:"provider"`
	SyncState    string `json:"sync_state"      yaml:"sync_state"`
	Trial        bool   `json:"trial"           yaml:"trial"`
}

// APIAccount represents an account as exposed by the open-source sync
// engine's standard /accounts collection, used when the client runs
// unauthenticated (no app ID or secret).
type APIAccount struct {
	Resource

	EmailAddress     string `json:"email_address"     yaml:"email_address"`
	Name             string `json:"name"              yaml:"name"`
	OrganizationUnit string `json:"organization_unit" yaml:"organization_unit"`
	Provider         string `json:"provider"          yaml:"provider"`
	SyncState        string `json:"sync_state"        yaml:"sync_state"`
}

// RSVPRequest is the payload for responding to an event invitation.
type RSVPRequest struct {
	EventID string `json:"event_id" yaml:"event_id"`
	Status  string `json:"status"   yaml:"status"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}
