package cloudapi

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"

	"github.com/skynet2/expense-tracker-sync/pkg/common"
	"github.com/skynet2/expense-tracker-sync/pkg/database"
)

type scopedRecord[T any] interface {
	RecordID() string
	WithScope(scopeID string) T
}

// Client talks to a PostgREST style backend. Tables live under /rest/v1/{table} and rows
// are owned through the user_id column.
type Client struct {
	cl      *req.Client
	apiKey  string
	baseURL string
}

func NewClient(
	apiKey string,
	baseURL string,
	cl *req.Client,
) *Client {
	return &Client{
		cl:      cl,
		apiKey:  apiKey,
		baseURL: baseURL,
	}
}

func (c *Client) request(ctx context.Context, token string) *req.Request {
	if token == "" {
		token = c.apiKey
	}

	return c.cl.R().
		SetContext(ctx).
		SetHeader("apikey", c.apiKey).
		SetBearerAuthToken(token)
}

// Table is the remote store of one entity type.
type Table[T scopedRecord[T]] struct {
	client *Client
	table  string
	token  func() string
}

func NewTable[T scopedRecord[T]](
	client *Client,
	entity database.EntityType,
	token func() string,
) *Table[T] {
	if token == nil {
		token = func() string { return "" }
	}

	return &Table[T]{
		client: client,
		table:  string(entity),
		token:  token,
	}
}

func (t *Table[T]) url() string {
	return t.client.baseURL + "/rest/v1/" + t.table
}

func (t *Table[T]) GetAll(ctx context.Context, scopeID string) ([]T, error) {
	if scopeID == "" {
		return nil, errors.Wrap(common.ErrUnauthenticated, "scope id is required")
	}

	var items []T

	resp, err := t.client.request(ctx, t.token()).
		SetQueryParam("select", "*").
		SetQueryParam("user_id", "eq."+scopeID).
		SetSuccessResult(&items).
		Get(t.url())
	if err := t.check(resp, err, "get_all"); err != nil {
		return nil, err
	}

	if items == nil {
		items = make([]T, 0)
	}

	return items, nil
}

func (t *Table[T]) GetByID(ctx context.Context, id string, scopeID string) (*T, error) {
	if scopeID == "" {
		return nil, errors.Wrap(common.ErrUnauthenticated, "scope id is required")
	}

	var items []T

	resp, err := t.client.request(ctx, t.token()).
		SetQueryParam("select", "*").
		SetQueryParam("id", "eq."+id).
		SetQueryParam("user_id", "eq."+scopeID).
		SetSuccessResult(&items).
		Get(t.url())
	if err := t.check(resp, err, "get_by_id"); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, nil
	}

	return &items[0], nil
}

func (t *Table[T]) Add(ctx context.Context, record T, scopeID string) (T, error) {
	if scopeID == "" {
		return record, errors.Wrap(common.ErrUnauthenticated, "scope id is required")
	}

	record = record.WithScope(scopeID)

	resp, err := t.client.request(ctx, t.token()).
		SetHeader("Prefer", "return=minimal").
		SetBodyJsonMarshal(record).
		Post(t.url())
	if err == nil && resp.StatusCode == http.StatusConflict {
		return record, errors.Wrapf(common.ErrConflict, "id %s", record.RecordID())
	}

	if err := t.check(resp, err, "add"); err != nil {
		return record, err
	}

	return record, nil
}

func (t *Table[T]) Update(ctx context.Context, record T, scopeID string) (T, error) {
	if scopeID == "" {
		return record, errors.Wrap(common.ErrUnauthenticated, "scope id is required")
	}

	record = record.WithScope(scopeID)

	var updated []T

	resp, err := t.client.request(ctx, t.token()).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+record.RecordID()).
		SetQueryParam("user_id", "eq."+scopeID).
		SetBodyJsonMarshal(record).
		SetSuccessResult(&updated).
		Patch(t.url())
	if err := t.check(resp, err, "update"); err != nil {
		return record, err
	}

	if len(updated) == 0 {
		return record, errors.Wrapf(common.ErrNotFound, "id %s", record.RecordID())
	}

	return record, nil
}

func (t *Table[T]) Delete(ctx context.Context, id string, scopeID string) (string, error) {
	if scopeID == "" {
		return id, errors.Wrap(common.ErrUnauthenticated, "scope id is required")
	}

	resp, err := t.client.request(ctx, t.token()).
		SetQueryParam("id", "eq."+id).
		SetQueryParam("user_id", "eq."+scopeID).
		Delete(t.url())
	if err := t.check(resp, err, "delete"); err != nil {
		return id, err
	}

	return id, nil
}

func (t *Table[T]) check(resp *req.Response, err error, op string) error {
	if err != nil {
		return common.NewStoreError("cloud", op, errors.Wrap(common.ErrOffline, err.Error()))
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return common.NewStoreError("cloud", op, errors.Wrap(common.ErrUnauthenticated, resp.String()))
	}

	if resp.IsErrorState() {
		return common.NewStoreError("cloud", op, errors.Newf("got error response: %s", resp.String()))
	}

	return nil
}
