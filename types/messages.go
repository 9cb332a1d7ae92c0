package types

import "net/url"

const MessageFormatText = "text"

type MessageAddRequest struct {
	Format    string
	Subject   string
	FromEmail string
	FromName  string
	ReplyTo   string
	Priority  string
	Charset   string
	Encoding  string
	Text      string
	ListIds   []string
}

var _ Params = MessageAddRequest{}

func (r MessageAddRequest) Values() url.Values {
	v := url.Values{}
	v.Set("format", r.Format)
	v.Set("subject", r.Subject)
	v.Set("fromemail", r.FromEmail)
	v.Set("fromname", r.FromName)
	v.Set("reply2", r.ReplyTo)
	v.Set("priority", r.Priority)
	v.Set("charset", r.Charset)
	v.Set("encoding", r.Encoding)
	v.Set("text", r.Text)
	for _, listId := range r.ListIds {
		v.Set(ListMembership(listId))
	}
	return v
}
