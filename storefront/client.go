package storefront

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/storefrontkit/storefront-auth/internal/utils"
)

const requestTimeout = 10 * time.Second

// API is the provider surface consumed by the auth service. All calls
// are a single attempt against the configured GraphQL endpoint; there
// are no retries and no side effects beyond the network call itself.
type API interface {
	Login(ctx context.Context, email, password string) (*TokenSet, error)
	GetCustomer(ctx context.Context, accessToken string) (*Customer, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenSet, error)
}

type ClientOpts struct {
	Endpoint string // GraphQL endpoint URL
}

// Client talks to the commerce identity provider over its single
// GraphQL endpoint.
type Client struct {
	httpClient *resty.Client
	endpoint   string
}

var _ API = (*Client)(nil)

func NewClient(opts ClientOpts) *Client {
	c := &Client{endpoint: opts.Endpoint}
	c.httpClient = resty.New().
		SetTimeout(requestTimeout).
		SetBaseURL(c.endpoint).
		SetHeader("Content-Type", "application/json")
	return c
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   any            `json:"data"`
	Errors []graphqlError `json:"errors,omitempty"`
}

// post issues one GraphQL request and decodes the data payload into
// data. A non-empty bearer is attached as an Authorization header.
func (c *Client) post(ctx context.Context, bearer string, body graphqlRequest, data any) error {
	envelope := &graphqlResponse{Data: data}
	request := c.httpClient.NewRequest().
		SetContext(ctx).
		SetBody(body).
		SetResult(envelope)
	if bearer != "" {
		request.SetHeader("Authorization", "Bearer "+bearer)
	}

	res, err := request.Post("")
	if err != nil {
		return errors.Wrap(err, "[Client.post] request failed")
	}
	if res.IsError() {
		return errors.Errorf("[Client.post] request failed with status %d", res.StatusCode())
	}
	if len(envelope.Errors) > 0 {
		return errors.Wrap(ErrProviderRejected, envelope.Errors[0].Message)
	}
	return nil
}

type tokenPayload struct {
	Token *TokenSet `json:"token"`
}

// Login exchanges an email/password pair for a TokenSet. The provider
// validates the credentials; this call only requires presence.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenSet, error) {
	if email == "" || password == "" {
		return nil, errors.New("[Client.Login] email and password are required")
	}

	var data struct {
		CustomerAccessTokenCreate *tokenPayload `json:"customerAccessTokenCreate"`
	}
	err := c.post(ctx, "", graphqlRequest{
		Query: customerAccessTokenCreateQuery,
		Variables: map[string]any{
			"input": map[string]any{"email": email, "password": password},
		},
	}, &data)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.Login]")
	}

	if data.CustomerAccessTokenCreate == nil || data.CustomerAccessTokenCreate.Token == nil {
		return nil, errors.Wrap(ErrProviderRejected, "[Client.Login] no token payload")
	}
	return data.CustomerAccessTokenCreate.Token, nil
}

type customerPayload struct {
	ID             string  `json:"id"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email"`
	CustomerGroups *struct {
		Items []Group `json:"items"`
	} `json:"customerGroups"`
}

// GetCustomer fetches the authenticated customer's profile using the
// given access token as a bearer credential.
func (c *Client) GetCustomer(ctx context.Context, accessToken string) (*Customer, error) {
	var data struct {
		Customer *customerPayload `json:"customer"`
	}
	err := c.post(ctx, accessToken, graphqlRequest{Query: getCustomerQuery}, &data)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.GetCustomer]")
	}

	if data.Customer == nil || data.Customer.ID == "" {
		return nil, errors.Wrap(ErrProviderRejected, "[Client.GetCustomer] no customer payload")
	}

	customer := &Customer{
		ID:        data.Customer.ID,
		FirstName: utils.Value(data.Customer.FirstName),
		LastName:  utils.Value(data.Customer.LastName),
		Email:     utils.Value(data.Customer.Email),
		Groups:    []Group{},
	}
	if data.Customer.CustomerGroups != nil && data.Customer.CustomerGroups.Items != nil {
		customer.Groups = data.Customer.CustomerGroups.Items
	}
	return customer, nil
}

// RefreshToken exchanges a refresh token for a fresh TokenSet with a
// new access token, new refresh token, and new ttl. The session itself
// is never mutated here; that is the auth service's responsibility.
func (c *Client) RefreshToken(ctx context.Context, refreshToken string) (*TokenSet, error) {
	if refreshToken == "" {
		return nil, errors.New("[Client.RefreshToken] refresh token is required")
	}

	var data struct {
		CustomerAccessTokenRefresh *tokenPayload `json:"customerAccessTokenRefresh"`
	}
	err := c.post(ctx, "", graphqlRequest{
		Query: customerAccessTokenRefreshQuery,
		Variables: map[string]any{
			"input": map[string]any{"refreshToken": refreshToken},
		},
	}, &data)
	if err != nil {
		return nil, errors.Wrap(err, "[Client.RefreshToken]")
	}

	if data.CustomerAccessTokenRefresh == nil || data.CustomerAccessTokenRefresh.Token == nil {
		return nil, errors.Wrap(ErrProviderRejected, "[Client.RefreshToken] no token payload")
	}
	return data.CustomerAccessTokenRefresh.Token, nil
}
