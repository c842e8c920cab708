package client

import (
	"github.com/fivetwenty-io/ledger-client/internal/constants"
	"github.com/fivetwenty-io/ledger-client/pkg/ledger"
)

// ContactsClient implements ledger.ContactsClient.
type ContactsClient struct {
	*ResourceClient[ledger.ContactModel]
}

// NewContactsClient creates a new contacts client.
func NewContactsClient(transport ledger.Transport) *ContactsClient {
	return &ContactsClient{
		ResourceClient: NewResourceClient[ledger.ContactModel](transport, constants.APIPathContacts, "contact"),
	}
}
