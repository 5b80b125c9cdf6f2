package client

// Namespace selects the URL prefix and signing session for a resource kind.
type Namespace string

const (
	// NamespaceStandard resources live at {base}/{collection} and are signed
	// with the bearer token.
	NamespaceStandard Namespace = "standard"

	// NamespaceAdmin resources live at {base}/a/{appID}/{collection} and are
	// signed with the app secret.
	NamespaceAdmin Namespace = "admin"
)

// Descriptor is the static metadata for a resource kind: its collection
// name and the namespace it belongs to. A kind's namespace never changes at
// runtime.
type Descriptor struct {
	Collection string
	Namespace  Namespace
}

var (
	threadsDescriptor   = Descriptor{Collection: "threads", Namespace: NamespaceStandard}
	messagesDescriptor  = Descriptor{Collection: "messages", Namespace: NamespaceStandard}
	draftsDescriptor    = Descriptor{Collection: "drafts", Namespace: NamespaceStandard}
	sendDescriptor      = Descriptor{Collection: "send", Namespace: NamespaceStandard}
	filesDescriptor     = Descriptor{Collection: "files", Namespace: NamespaceStandard}
	contactsDescriptor  = Descriptor{Collection: "contacts", Namespace: NamespaceStandard}
	eventsDescriptor    = Descriptor{Collection: "events", Namespace: NamespaceStandard}
	rsvpDescriptor      = Descriptor{Collection: "send-rsvp", Namespace: NamespaceStandard}
	calendarsDescriptor = Descriptor{Collection: "calendars", Namespace: NamespaceStandard}
	foldersDescriptor   = Descriptor{Collection: "folders", Namespace: NamespaceStandard}
	labelsDescriptor    = Descriptor{Collection: "labels", Namespace: NamespaceStandard}

	// Two shapes of the accounts collection: the management namespace and
	// the open-source sync engine's standard collection.
	accountsAdminDescriptor = Descriptor{Collection: "accounts", Namespace: NamespaceAdmin}
	accountsSyncDescriptor  = Descriptor{Collection: "accounts", Namespace: NamespaceStandard}
)
