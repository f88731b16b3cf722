package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"dashboard-service/internal/ticket"
)

type ListQuery struct {
	Page    int
	PerPage int
}

type TicketClient struct {
	base
}

func NewTicketClient(baseURL string, timeout time.Duration, log zerolog.Logger) *TicketClient {
	return &TicketClient{base: newBase(baseURL, timeout, log.With().Str("upstream", "tickets").Logger())}
}

func (c *TicketClient) List(ctx context.Context, q ListQuery) ([]ticket.Ticket, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 {
		q.PerPage = 20
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("per_page", strconv.Itoa(q.PerPage))

	req, err := c.newRequest(ctx, http.MethodGet, "/tickets?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	var body struct {
		Data []ticket.Ticket `json:"data"`
	}
	if err := c.do(req, &body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		body.Data = []ticket.Ticket{}
	}
	return body.Data, nil
}

func (c *TicketClient) Get(ctx context.Context, uuid string) (ticket.Ticket, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/tickets/"+url.PathEscape(uuid), nil)
	if err != nil {
		return ticket.Ticket{}, err
	}
	var body struct {
		Data *ticket.Ticket `json:"data"`
	}
	if err := c.do(req, &body); err != nil {
		return ticket.Ticket{}, err
	}
	if body.Data == nil {
		return ticket.Ticket{}, ErrNotFound
	}
	return *body.Data, nil
}

// Update posts status, comment and an optional attachment as multipart/form-data.
func (c *TicketClient) Update(ctx context.Context, uuid string, form ticket.UpdateForm) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("status", string(form.Status)); err != nil {
		return err
	}
	if err := mw.WriteField("comment", form.Comment); err != nil {
		return err
	}
	if att := form.Attachment; att != nil && att.Content != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="attachment"; filename=%q`, att.Filename))
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, att.Content); err != nil {
			return fmt.Errorf("copy attachment: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/tickets/"+url.PathEscape(uuid)+"/update", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, nil)
}

var _ ticket.API = (*TicketClient)(nil)
