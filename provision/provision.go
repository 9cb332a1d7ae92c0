// Package provision creates a small, repeatable set of test data in an
// ActiveCampaign account: a sender address, a "Test List", five
// contacts, one message and one campaign scheduled two minutes out.
//
// Nothing is rolled back. If a step fails, whatever the earlier steps
// created stays in the account.
package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/lo5an/ActiveCampaignDemo/logger"
	"github.com/lo5an/ActiveCampaignDemo/types"
)

// SendDelay is how far in the future campaigns are scheduled.
// ActiveCampaign only triggers the send for an sdate in the future.
const SendDelay = 2 * time.Minute

var (
	// ErrAmbiguousList is returned when more than one list matches
	// TestListName.
	ErrAmbiguousList = errors.New("more than one list matches")

	// ErrUnexpectedListing is returned when list_list answers with a
	// shape that is neither "found" nor "nothing found".
	ErrUnexpectedListing = errors.New("unexpected list_list response")
)

type Provisioner struct {
	client Client
	logger logger.Logger
	out    io.Writer
	now    func() time.Time
}

type Option func(p *Provisioner)

func WithLogger(l logger.Logger) Option {
	return func(p *Provisioner) {
		p.logger = l
	}
}

// WithOutput sets where the confirmation line is printed.
// default: os.Stdout
func WithOutput(w io.Writer) Option {
	return func(p *Provisioner) {
		p.out = w
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Provisioner) {
		p.now = now
	}
}

func New(client Client, opts ...Option) *Provisioner {
	p := &Provisioner{
		client: client,
		logger: &logger.Noop{},
		out:    os.Stdout,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Report summarizes one Run.
type Report struct {
	Tag            string
	AddressCreated bool
	ListId         string
	ListCreated    bool
	Contacts       int
	MessageId      string
	CampaignId     string
	SendAt         string
}

// Run executes every step in order, feeding the list and message ids
// forward. The returned Report holds whatever completed before an error.
func (p *Provisioner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		Tag: strconv.FormatInt(p.now().Unix(), 10),
	}

	created, err := p.ensureAddress(ctx)
	if err != nil {
		return report, err
	}
	report.AddressCreated = created

	listId, created, err := p.ensureList(ctx)
	if err != nil {
		return report, err
	}
	report.ListId = listId
	report.ListCreated = created

	if err := p.PopulateContacts(ctx, listId); err != nil {
		return report, err
	}
	report.Contacts = ContactCount

	messageId, err := p.CreateMessage(ctx, listId, report.Tag)
	if err != nil {
		return report, err
	}
	report.MessageId = messageId

	campaignId, sendAt, err := p.scheduleCampaign(ctx, listId, messageId, report.Tag)
	if err != nil {
		return report, err
	}
	report.CampaignId = campaignId
	report.SendAt = sendAt

	return report, nil
}

// EnsureAddress adds the test sender address unless the account already
// has at least one address.
func (p *Provisioner) EnsureAddress(ctx context.Context) error {
	_, err := p.ensureAddress(ctx)
	return err
}

func (p *Provisioner) ensureAddress(ctx context.Context) (bool, error) {
	exists, err := p.client.HasAddress(ctx)
	if err != nil {
		return false, fmt.Errorf("list addresses: %w", err)
	}
	if exists {
		p.logger.Debugf("address already present; skipping address_add")
		return false, nil
	}

	id, err := p.client.AddAddress(ctx, testAddress)
	if err != nil {
		return false, fmt.Errorf("add address: %w", err)
	}
	p.logger.Infof("Created test address %s", id)
	return true, nil
}

// EnsureList returns the id of the list named TestListName, creating it
// when none exists.
func (p *Provisioner) EnsureList(ctx context.Context) (string, error) {
	id, _, err := p.ensureList(ctx)
	return id, err
}

func (p *Provisioner) ensureList(ctx context.Context) (string, bool, error) {
	lists, err := p.client.ListLists(ctx, types.ListListRequest{
		Ids:  "all",
		Name: TestListName,
	})
	if err != nil {
		return "", false, fmt.Errorf("find list %q: %w", TestListName, err)
	}

	lookup := classifyLists(lists)
	switch lookup.kind {
	case listFound:
		p.logger.Debugf("Using existing list %s", lookup.id)
		return lookup.id, false, nil
	case listMissing:
		id, err := p.client.AddList(ctx, testList)
		if err != nil {
			return "", false, fmt.Errorf("add list %q: %w", TestListName, err)
		}
		p.logger.Infof("Created list %q with id %s", TestListName, id)
		return id.String(), true, nil
	case listAmbiguous:
		return "", false, fmt.Errorf("%w %q: %d candidates", ErrAmbiguousList, TestListName, lookup.count)
	default:
		return "", false, fmt.Errorf(
			"%w: result_code=%d, entries=%d, message=%q",
			ErrUnexpectedListing, lists.Code, len(lists.Items), lists.Message,
		)
	}
}

type listLookupKind int

const (
	listUnexpected listLookupKind = iota
	listMissing
	listFound
	listAmbiguous
)

type listLookup struct {
	kind  listLookupKind
	id    string
	count int
}

// classifyLists turns a list_list response into an explicit outcome.
// The name filter on list_list is a substring match, so entries whose
// name is exactly TestListName are preferred when names are present.
func classifyLists(lists types.Listing[types.List]) listLookup {
	if lists.Code == types.ResultFailure {
		if len(lists.Items) == 0 {
			return listLookup{kind: listMissing}
		}
		return listLookup{kind: listUnexpected}
	}
	if !lists.Succeeded() {
		return listLookup{kind: listUnexpected}
	}

	candidates := make([]types.List, 0, len(lists.Items))
	for _, l := range lists.Items {
		if l.Name == TestListName {
			candidates = append(candidates, l)
		}
	}
	if len(candidates) == 0 {
		candidates = lists.Items
	}

	switch {
	case len(candidates) == 1 && candidates[0].Id != "":
		return listLookup{kind: listFound, id: candidates[0].Id.String(), count: 1}
	case len(candidates) > 1:
		return listLookup{kind: listAmbiguous, count: len(candidates)}
	}
	return listLookup{kind: listUnexpected}
}

// PopulateContacts syncs ContactCount test contacts onto the list.
// contact_sync upserts by email, so repeated runs update the same five.
func (p *Provisioner) PopulateContacts(ctx context.Context, listId string) error {
	for i := 0; i < ContactCount; i++ {
		contact := testContact(i, listId)
		if _, err := p.client.SyncContact(ctx, contact); err != nil {
			return fmt.Errorf("sync contact %s: %w", contact.Email, err)
		}
	}
	p.logger.Infof("Synced %d contacts to list %s", ContactCount, listId)
	return nil
}

// CreateMessage adds a plain-text message whose subject carries tag.
func (p *Provisioner) CreateMessage(ctx context.Context, listId string, tag string) (string, error) {
	id, err := p.client.AddMessage(ctx, testMessage(listId, tag))
	if err != nil {
		return "", fmt.Errorf("add message: %w", err)
	}
	p.logger.Infof("Created message %s", id)
	return id.String(), nil
}

// ScheduleCampaign creates a single-send campaign for the message,
// scheduled SendDelay from now, and prints its id.
func (p *Provisioner) ScheduleCampaign(ctx context.Context, listId, messageId, tag string) (string, error) {
	id, _, err := p.scheduleCampaign(ctx, listId, messageId, tag)
	return id, err
}

func (p *Provisioner) scheduleCampaign(ctx context.Context, listId, messageId, tag string) (string, string, error) {
	sendAt := SendDate(p.now())

	id, err := p.client.CreateCampaign(ctx, testCampaign(listId, messageId, tag, sendAt))
	if err != nil {
		return "", "", fmt.Errorf("create campaign: %w", err)
	}

	p.logger.Infof("Campaign %s scheduled for %s", id, sendAt)
	_, _ = fmt.Fprintf(p.out, "Created and scheduled campaign %s\n", id)
	return id.String(), sendAt, nil
}

// SendDate returns the sdate value for a campaign created at now.
func SendDate(now time.Time) string {
	return types.CampaignSendDate(now.Add(SendDelay))
}
