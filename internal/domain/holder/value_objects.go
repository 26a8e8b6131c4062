package holder

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidContact = errors.New("contact must be a phone number of 7 to 15 digits")
	ErrHolderRequired = errors.New("holder needs a user id or a contact")
)

const (
	minContactDigits = 7
	maxContactDigits = 15
)

// Contact is a normalized phone number: optional leading '+', digits only.
type Contact struct {
	value string
}

func NewContact(raw string) (Contact, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Contact{}, nil
	}

	var b strings.Builder
	digits := 0
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			digits++
		case r == '+' && i == 0:
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
			// separators
		default:
			return Contact{}, ErrInvalidContact
		}
	}

	if digits < minContactDigits || digits > maxContactDigits {
		return Contact{}, ErrInvalidContact
	}
	return Contact{value: b.String()}, nil
}

func (c Contact) String() string { return c.value }
func (c Contact) IsEmpty() bool  { return c.value == "" }

// Holder is the registered or anonymous party behind a lease or queue entry.
type Holder struct {
	userID  *uuid.UUID
	contact Contact
}

func NewHolder(userID *uuid.UUID, contact Contact) (Holder, error) {
	if userID != nil && *userID == uuid.Nil {
		userID = nil
	}
	if userID == nil && contact.IsEmpty() {
		return Holder{}, ErrHolderRequired
	}
	return Holder{userID: userID, contact: contact}, nil
}

// Reconstruct skips validation for rows already persisted.
func Reconstruct(userID *uuid.UUID, contact string) Holder {
	return Holder{userID: userID, contact: Contact{value: contact}}
}

func (h Holder) UserID() *uuid.UUID { return h.userID }
func (h Holder) Contact() Contact   { return h.contact }

func (h Holder) IsRegistered() bool { return h.userID != nil }

// ContactPtr returns nil when no contact is known, for nullable columns.
func (h Holder) ContactPtr() *string {
	if h.contact.IsEmpty() {
		return nil
	}
	s := h.contact.String()
	return &s
}

// Matches reports whether two holders denote the same party, by user id or by contact.
func (h Holder) Matches(other Holder) bool {
	if h.userID != nil && other.userID != nil && *h.userID == *other.userID {
		return true
	}
	return !h.contact.IsEmpty() && h.contact == other.contact
}

// Key identifies the holder on the change feed. Registered users win over contacts.
func (h Holder) Key() string {
	if h.userID != nil {
		return "user:" + h.userID.String()
	}
	if !h.contact.IsEmpty() {
		return "phone:" + h.contact.String()
	}
	return ""
}
