package nylas

import (
	"context"
	"time"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "0.1.0"

// MailClients provides access to mail resource clients.
type MailClients interface {
	Threads() ThreadsClient
	Messages() MessagesClient
	Drafts() DraftsClient
	Files() FilesClient
	Folders() FoldersClient
	Labels() LabelsClient
}

// SchedulingClients provides access to calendar resource clients.
type SchedulingClients interface {
	Events() EventsClient
	Calendars() CalendarsClient
}

// DirectoryClients provides access to contact and account resource clients.
type DirectoryClients interface {
	Contacts() ContactsClient
	Accounts() AccountsClient
}

// AuthClient provides OAuth and credential operations.
type AuthClient interface {
	// AuthenticationURL builds the hosted-auth authorize URL the user should
	// be redirected to.
	AuthenticationURL(redirectURI, loginHint string) string
	// TokenForCode exchanges an authorization code for an access token and
	// installs it as the client's bearer credential.
	TokenForCode(ctx context.Context, code string) (string, error)
	// RevokeToken revokes the current access token and clears it.
	RevokeToken(ctx context.Context) error
	// SetAccessToken replaces the bearer credential. Safe to call while
	// requests are in flight.
	SetAccessToken(token string)
	// AccessToken returns the current bearer credential, or "".
	AccessToken() string
	// OpenSourceAPI reports whether the client runs unauthenticated against
	// a sync engine (no app ID and no app secret).
	OpenSourceAPI() bool
}

// Client is the full API surface of a Nylas client.
type Client interface {
	MailClients
	SchedulingClients
	DirectoryClients
	AuthClient

	// CurrentAccount fetches the account bound to the current access token.
	CurrentAccount(ctx context.Context) (*APIAccount, error)
}

// ThreadsClient operates on conversation threads.
type ThreadsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Thread, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Thread, error)
	Update(ctx context.Context, id string, update map[string]interface{}) (*Thread, error)
	Iterate(ctx context.Context, params *QueryParams) *Iterator[Thread]
}

// MessagesClient operates on email messages.
type MessagesClient interface {
	List(ctx context.Context, params *QueryParams) ([]Message, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Message, error)
	// GetRaw returns the raw RFC 2822 message bytes.
	GetRaw(ctx context.Context, id string) ([]byte, error)
	Update(ctx context.Context, id string, update map[string]interface{}) (*Message, error)
	Iterate(ctx context.Context, params *QueryParams) *Iterator[Message]
}

// DraftsClient operates on draft messages.
type DraftsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Draft, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Draft, error)
	Create(ctx context.Context, request *DraftRequest) (*Draft, error)
	Update(ctx context.Context, id string, request *DraftRequest) (*Draft, error)
	Delete(ctx context.Context, id string, version *int) error
	// Send sends a message. The send endpoint returns the sent message
	// object directly rather than a draft.
	Send(ctx context.Context, request *SendRequest) (*Message, error)
}

// FilesClient operates on attachments.
type FilesClient interface {
	List(ctx context.Context, params *QueryParams) ([]File, error)
	Get(ctx context.Context, id string, params *QueryParams) (*File, error)
	// Upload posts file content as multipart form data.
	Upload(ctx context.Context, filename string, contentType string, content []byte) (*File, error)
	// Download returns the raw file bytes.
	Download(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) error
}

// ContactsClient operates on address book contacts.
type ContactsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Contact, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Contact, error)
	Create(ctx context.Context, contact *Contact) (*Contact, error)
	Update(ctx context.Context, id string, contact *Contact) (*Contact, error)
	Delete(ctx context.Context, id string) error
	Iterate(ctx context.Context, params *QueryParams) *Iterator[Contact]
}

// EventsClient operates on calendar events.
type EventsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Event, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Event, error)
	Create(ctx context.Context, event *Event) (*Event, error)
	Update(ctx context.Context, id string, event *Event) (*Event, error)
	Delete(ctx context.Context, id string) error
	// RSVP responds to an event invitation on the event owner's behalf.
	RSVP(ctx context.Context, request *RSVPRequest) (*Event, error)
	Iterate(ctx context.Context, params *QueryParams) *Iterator[Event]
}

// CalendarsClient operates on calendars.
type CalendarsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Calendar, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Calendar, error)
	Iterate(ctx context.Context, params *QueryParams) *Iterator[Calendar]
}

// FoldersClient operates on IMAP folders.
type FoldersClient interface {
	List(ctx context.Context, params *QueryParams) ([]Folder, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Folder, error)
	Create(ctx context.Context, folder *Folder) (*Folder, error)
	Update(ctx context.Context, id string, folder *Folder) (*Folder, error)
	Delete(ctx context.Context, id string) error
}

// LabelsClient operates on Gmail labels.
type LabelsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Label, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Label, error)
	Create(ctx context.Context, label *Label) (*Label, error)
	Update(ctx context.Context, id string, label *Label) (*Label, error)
	Delete(ctx context.Context, id string) error
}

// AccountsClient operates on accounts. The management operations live under
// the application namespace (/a/{app_id}/accounts) and sign requests with
// the app secret; ListSync reads the standard /accounts collection exposed
// by the open-source sync engine when the client runs unauthenticated.
type AccountsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Account, error)
	Get(ctx context.Context, id string, params *QueryParams) (*Account, error)
	Delete(ctx context.Context, id string) error
	Upgrade(ctx context.Context, id string) (*Account, error)
	Downgrade(ctx context.Context, id string) (*Account, error)
	ListSync(ctx context.Context, params *QueryParams) ([]APIAccount, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a nylas.Client.
//
// Credential resolution is explicit: the library never consults the
// environment. Callers that want NYLAS_APP_ID-style fallbacks resolve them
// before constructing the config (the bundled CLI does this via viper).
type Config struct {
	// APIEndpoint: base URL for the API. nylasclient.New normalizes this by
	// trimming a trailing slash and adding "https://" when no scheme is
	// present; when empty the public API server is used.
	APIEndpoint string

	// AppID identifies the application for the admin namespace and OAuth.
	AppID string
	// AppSecret signs admin-namespace requests (basic auth) and OAuth code
	// exchange. Immutable for the life of the client.
	AppSecret string
	// AccessToken is the initial bearer credential; may be rotated later via
	// SetAccessToken or TokenForCode.
	AccessToken string

	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger

	// RetryMax: maximum number of retries for transient failures. The
	// default is 0: failures surface immediately.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration

	// Cache: optional GET response cache configuration.
	Cache *CacheConfig

	// Interceptors: optional chain run around every HTTP request. Request
	// interceptors may reject or decorate the outgoing request; response
	// interceptors observe the raw response before validation errors are
	// returned to the caller.
	Interceptors *InterceptorChain
}
